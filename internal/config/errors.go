// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
)

// ExitCodeLoadFailure is the process exit status used when a configuration
// file cannot be opened, read or parsed.
const ExitCodeLoadFailure = 2

// Error kinds returned (wrapped in a [*LoadError]) by [NewManager].
var (
	// ErrFileAccess indicates that a configuration file could not be opened
	// or read.
	ErrFileAccess = errors.New("config file access error")
	// ErrParse indicates that a configuration file does not hold a valid JSON
	// object.
	ErrParse = errors.New("config file parse error")
)

var (
	errInvalidJSON = errors.New("invalid JSON")
	errNotAnObject = errors.New("top-level value is not an object")
)

// LoadError describes a failed step of the load sequence.
type LoadError struct {
	// Stage is the state the manager was in when the step failed:
	// StateUninitialized for the defaults file, StateDefaultsLoaded for the
	// mode-specific file.
	Stage State
	// File is the name of the configuration file being loaded.
	File string
	// Kind is ErrFileAccess or ErrParse.
	Kind error
	// Err is the underlying cause.
	Err error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Kind, e.File, e.Err)
}

// Unwrap exposes both the kind and the cause to errors.Is and errors.As.
func (e *LoadError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

// Operation returns a short description of what failed, naming the document
// by its role (defaults, server or singleuser).
func (e *LoadError) Operation() string {
	role := documentRole(e.File)
	if errors.Is(e.Kind, ErrParse) {
		return "JSON error from " + role + " config file"
	}
	return "could not open " + role + " config file"
}

func documentRole(file string) string {
	switch file {
	case DefaultsFile:
		return "defaults"
	case SingleUserFile:
		return "singleuser"
	case ServerFile:
		return "server"
	default:
		return file
	}
}
