// Copyright (c) 2026 Termfolio Team
// Termfolio - terminal portfolio
// This source code is licensed under the MIT license found in the LICENSE file.

// Package buildvars contains variables injected at build time.
package buildvars

// Version and Commit are set at link time via
// `-ldflags -X github.com/termfolio/termfolio/buildvars.Version=...`.
// They are empty for local or development builds.
var (
	Version string
	Commit  string
)

// VersionOrDefault returns `Version` if set, otherwise returns the provided default.
func VersionOrDefault(def string) string {
	if len(Version) > 0 {
		return Version
	}
	return def
}
