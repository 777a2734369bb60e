// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-mud/internal/logger"
	"github.com/MKhiriev/go-mud/internal/version"
)

func newVersionCommand(info version.BuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version and build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger.FromContext(cmd.Context()).Debug().
				Str("build_version", info.BuildVersion()).
				Str("build_commit", info.BuildCommit()).
				Msg("printing version")

			_, err := cmd.OutOrStdout().Write([]byte(info.String()))
			return err
		},
	}
}
