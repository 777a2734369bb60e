// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
	"github.com/caarlos0/env/v11"
)

const (
	envPrefix       = "MUD_"
	defaultLogLevel = "info"
)

// Options are the launch options of the mud binary. They are read from the
// environment (MUD_ prefix) and from command-line flags; flags win.
type Options struct {
	// SingleUser selects single-user mode instead of server mode.
	// Env: MUD_SINGLE_USER
	SingleUser bool `env:"SINGLE_USER"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: MUD_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// PrintConfig prints the resolved configuration and exits.
	PrintConfig bool
}

type optionsBuilder struct {
	sources []*Options
	err     error
}

func newOptionsBuilder() *optionsBuilder {
	return &optionsBuilder{
		sources: make([]*Options, 0, 2),
	}
}

// build merges the collected sources in order. A later source overrides a
// field only when its value is non-zero.
func (b *optionsBuilder) build() (*Options, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occurred during building launch options: %w", b.err)
	}

	opts := &Options{LogLevel: defaultLogLevel}
	for _, src := range b.sources {
		if err := mergo.Merge(opts, src, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging launch options: %w", err)
		}
	}

	return opts, nil
}

func (b *optionsBuilder) withEnv() *optionsBuilder {
	envOpts := &Options{}
	if err := env.ParseWithOptions(envOpts, env.Options{Prefix: envPrefix}); err != nil {
		b.err = errors.Join(b.err, fmt.Errorf("error getting env options: %w", err))
		return b
	}

	b.sources = append(b.sources, envOpts)
	return b
}

func (b *optionsBuilder) withFlags(flags *Options) *optionsBuilder {
	if flags != nil {
		b.sources = append(b.sources, flags)
	}
	return b
}
