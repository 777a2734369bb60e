// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"errors"
	"os"

	pkgerrors "github.com/pkg/errors"
	"github.com/rs/zerolog"
	zerologpkgerrors "github.com/rs/zerolog/pkgerrors"

	"github.com/MKhiriev/go-mud/internal/config"
	"github.com/MKhiriev/go-mud/internal/logger"
)

// exit terminates the process. Tests replace it.
var exit = os.Exit

type stackTracer interface {
	StackTrace() pkgerrors.StackTrace
}

// reportLoadFailure writes the two-line critical diagnostic for a failed
// configuration load and terminates the process with
// config.ExitCodeLoadFailure. The first line names the operation and file,
// the second carries the innermost stack frame of the failure.
func reportLoadFailure(log *logger.Logger, err error) {
	operation := "could not load configuration"
	file := ""

	var loadErr *config.LoadError
	if errors.As(err, &loadErr) {
		operation = loadErr.Operation()
		file = loadErr.File
	}

	log.WithLevel(zerolog.FatalLevel).
		Str("component", "config").
		Str("file", file).
		Err(err).
		Msg(operation + ": " + file)

	log.WithLevel(zerolog.FatalLevel).
		Str("component", "config").
		Interface("stack", innermostFrame(err)).
		Msg("traceback")

	exit(config.ExitCodeLoadFailure)
}

// innermostFrame returns the first frame of the stack recorded on err, in
// zerolog's pkgerrors format, or nil when err carries no stack.
func innermostFrame(err error) any {
	var st stackTracer
	if !errors.As(err, &st) {
		return nil
	}

	stackErr, ok := st.(error)
	if !ok {
		return nil
	}

	frames, ok := zerologpkgerrors.MarshalStack(stackErr).([]map[string]string)
	if !ok || len(frames) == 0 {
		return nil
	}

	return frames[0]
}
