// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger that adds
// convenience constructors and context-aware helpers used throughout the
// MUD.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, WithLevel, etc.) are available directly on
// *Logger. Application code should pass *Logger by pointer and obtain
// command-scoped loggers via FromContext.
package logger

import (
	"context"
	"os"
	"runtime"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/rs/zerolog/pkgerrors"
)

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

// NewLogger constructs a *Logger for the given role label (e.g. "mud",
// "config") that writes JSON to os.Stdout.
//
// The logger is configured with:
//   - global log level set to level;
//   - a "role" field set to role;
//   - a "boot_id" field identifying this process run;
//   - a "time" timestamp field added to every log entry;
//   - a "func" caller field that records the fully-qualified function name;
//   - stack marshaling for errors created with github.com/pkg/errors.
func NewLogger(role string, level zerolog.Level) *Logger {
	zerolog.SetGlobalLevel(level)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name() // return function name
	}
	zerolog.CallerFieldName = "func"
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack

	logger := zerolog.New(os.Stdout).With().
		Str("role", role).
		Str("boot_id", bootID()).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// ParseLevel converts a level name such as "debug" or "warn" into a zerolog
// level. An empty name yields InfoLevel. Levels above FatalLevel ("panic",
// "disabled") are lowered to FatalLevel so fatal diagnostics are always
// written.
func ParseLevel(name string) (zerolog.Level, error) {
	if name == "" {
		return zerolog.InfoLevel, nil
	}

	level, err := zerolog.ParseLevel(name)
	if err != nil {
		return level, err
	}
	if level > zerolog.FatalLevel {
		return zerolog.FatalLevel, nil
	}
	return level, nil
}

// Nop returns a *Logger that discards all log output.
// It is intended for use in tests and other contexts where logging is
// undesirable or would produce noise.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver and adds a "component" field.
func (l *Logger) GetChildLogger(component string) *Logger {
	return &Logger{l.With().Str("component", component).Logger()}
}

// WithContext returns a copy of ctx carrying the logger.
func (l *Logger) WithContext(ctx context.Context) context.Context {
	return l.Logger.WithContext(ctx)
}

// FromContext extracts the zerolog.Logger stored in ctx by zerolog's log.Ctx
// helper and returns it as a *Logger.
//
// If no logger has been attached to ctx, zerolog returns its default logger,
// so this function never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}

func bootID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
