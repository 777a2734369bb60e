// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-mud/internal/config"
)

var errVarSyntax = errors.New("override variables must look like +name=value")

// parseVar splits a Quake-style override argument (+name=value).
// The value may be empty and may itself contain '='.
func parseVar(arg string) (string, string, error) {
	rest, ok := strings.CutPrefix(arg, "+")
	if !ok {
		return "", "", fmt.Errorf("%w: %q", errVarSyntax, arg)
	}

	name, value, ok := strings.Cut(rest, "=")
	if !ok || name == "" {
		return "", "", fmt.Errorf("%w: %q", errVarSyntax, arg)
	}

	return name, value, nil
}

// validateVars is the positional argument check of the root command.
func validateVars(_ *cobra.Command, args []string) error {
	for _, arg := range args {
		if _, _, err := parseVar(arg); err != nil {
			return err
		}
	}
	return nil
}

// installVars stores every override argument in vars. A repeated name keeps
// the last value.
func installVars(vars *config.Store, args []string) error {
	for _, arg := range args {
		name, value, err := parseVar(arg)
		if err != nil {
			return err
		}
		vars.Set(name, value)
	}
	return nil
}
