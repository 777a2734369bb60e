// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cli implements the mud command line: launch options, Quake-style
// override variables and the fatal startup path around config.NewManager.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/tidwall/pretty"

	"github.com/MKhiriev/go-mud/internal/config"
	"github.com/MKhiriev/go-mud/internal/logger"
	"github.com/MKhiriev/go-mud/internal/version"
)

// NewRootCommand builds the mud command tree.
func NewRootCommand(info version.BuildInfo) *cobra.Command {
	var flags Options

	root := &cobra.Command{
		Use:   "mud [flags] [+name=value ...]",
		Short: "Start the MUD",
		Long: `Start the MUD in server or single-user mode.

Configuration is read from defaults.config.json and then from either
server.config.json or singleuser.config.json in the working directory.
Arguments of the form +name=value are kept as override variables.

Examples:
  # Start in server mode
  mud

  # Start in single-user mode with an override variable
  mud --single +motd=hello

  # Show the resolved configuration
  mud --print-config`,
		Version:       version.Version,
		Args:          validateVars,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := newOptionsBuilder().
				withEnv().
				withFlags(&flags).
				build()
			if err != nil {
				return err
			}

			level, err := logger.ParseLevel(opts.LogLevel)
			if err != nil {
				return fmt.Errorf("invalid log level %q: %w", opts.LogLevel, err)
			}

			log := logger.NewLogger("mud", level)
			log.Logger = log.Output(cmd.OutOrStdout())

			ctx := context.WithValue(log.WithContext(cmd.Context()), optionsKey{}, opts)
			cmd.SetContext(ctx)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cmd.OutOrStdout(), args)
		},
	}

	root.Flags().BoolVarP(&flags.SingleUser, "single", "s", false, "run in single-user mode")
	root.Flags().BoolVar(&flags.PrintConfig, "print-config", false, "print the resolved configuration and exit")
	root.PersistentFlags().StringVar(&flags.LogLevel, "log-level", "", "log level (debug, info, warn, error)")

	root.AddCommand(newVersionCommand(info))

	return root
}

// Execute runs the mud command tree with os.Args.
func Execute(ctx context.Context, info version.BuildInfo) error {
	return NewRootCommand(info).ExecuteContext(ctx)
}

type optionsKey struct{}

func optionsFromContext(ctx context.Context) *Options {
	if opts, ok := ctx.Value(optionsKey{}).(*Options); ok {
		return opts
	}
	return &Options{LogLevel: defaultLogLevel}
}

func run(ctx context.Context, out io.Writer, args []string) error {
	opts := optionsFromContext(ctx)
	log := logger.FromContext(ctx)

	mode := config.ModeServer
	if opts.SingleUser {
		mode = config.ModeSingleUser
	}
	log.Info().Str("mode", mode.String()).Msg(version.Version)

	mgr, err := config.NewManager(mode, config.WithLogger(log.GetChildLogger("config")))
	if err != nil {
		reportLoadFailure(log, err)
		return err
	}

	if err = installVars(mgr.Vars, args); err != nil {
		return err
	}

	log.Info().
		Str("mode", mgr.Mode().String()).
		Int("defaults", mgr.Defaults.Len()).
		Int("config", mgr.Active().Len()).
		Int("vars", mgr.Vars.Len()).
		Msg("configuration resolved")

	if opts.PrintConfig {
		return printConfig(out, mgr)
	}

	return nil
}

// printConfig writes the defaults, active configuration and override
// variables as one indented JSON object.
func printConfig(out io.Writer, mgr *config.Manager) error {
	view := config.NewStore()
	view.Set("mode", mgr.Mode().String())
	view.Set("defaults", mgr.Defaults)
	view.Set("config", mgr.Active())
	view.Set("vars", mgr.Vars)

	raw, err := json.Marshal(view)
	if err != nil {
		return fmt.Errorf("error encoding configuration: %w", err)
	}

	_, err = out.Write(pretty.Pretty(raw))
	return err
}
