// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-mud/internal/cli"
	"github.com/MKhiriev/go-mud/internal/version"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	info := version.NewBuildInfo(buildVersion, buildDate, buildCommit)

	if err := cli.Execute(context.Background(), info); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
