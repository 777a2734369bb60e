// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package version holds the identity constants of the MUD and the build
// metadata injected at link time.
package version

import "fmt"

const (
	// Version is the product name and release.
	Version = "Dennis MUD v0.0.3-Alpha"
	// Copyright is the copyright line shown next to Version.
	Copyright = "Copyright 2018-2020 Michael D. Reiley"
)

const notAvailable = "N/A"

// BuildInfo carries immutable build-time metadata embedded into binaries.
//
// Values are typically injected by linker flags during CI/CD and shown in
// version output for diagnostics and release traceability.
type BuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

// NewBuildInfo constructs [BuildInfo] from the provided build metadata.
// Empty values are reported as "N/A".
func NewBuildInfo(buildVersion, buildDate, buildCommit string) BuildInfo {
	return BuildInfo{
		buildVersion: orNotAvailable(buildVersion),
		buildDate:    orNotAvailable(buildDate),
		buildCommit:  orNotAvailable(buildCommit),
	}
}

// BuildVersion returns the semantic version string of the build.
func (b BuildInfo) BuildVersion() string {
	return b.buildVersion
}

// BuildDate returns the build timestamp string.
func (b BuildInfo) BuildDate() string {
	return b.buildDate
}

// BuildCommit returns the source-control commit hash used for the build.
func (b BuildInfo) BuildCommit() string {
	return b.buildCommit
}

// String renders the identity constants and build metadata, one per line.
func (b BuildInfo) String() string {
	return fmt.Sprintf("%s\n%s\nBuild version: %s\nBuild date: %s\nBuild commit: %s\n",
		Version, Copyright, b.buildVersion, b.buildDate, b.buildCommit)
}

func orNotAvailable(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}
