// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// These variables are set via -ldflags at build time, for example:
//
//	go build -ldflags "-X github.com/bureau-foundation/transmute/lib/version.GitCommit=$(git rev-parse --short HEAD)"
var (
	// GitCommit is the short git SHA of the build.
	GitCommit = "unknown"

	// GitDirty indicates whether there were uncommitted changes.
	GitDirty = "false"

	// BuildTime is the UTC timestamp of the build.
	BuildTime = "unknown"

	// Version is the semantic version. This is set manually for releases.
	Version = "0.1.0-dev"
)

// shortCommitLength matches "git rev-parse --short".
const shortCommitLength = 7

// build is the resolved build stamp.
type build struct {
	commit string
	dirty  bool
	time   string
}

// current merges the injected variables with the toolchain's VCS
// settings. Injected values win.
func current() build {
	stamp := build{
		commit: GitCommit,
		dirty:  GitDirty == "true",
		time:   BuildTime,
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return stamp
	}
	return stamp.withSettings(info.Settings)
}

// withSettings fills unknown fields from vcs.* build settings.
func (b build) withSettings(settings []debug.BuildSetting) build {
	injectedCommit := b.commit != "unknown"
	for _, setting := range settings {
		switch setting.Key {
		case "vcs.revision":
			if !injectedCommit && setting.Value != "" {
				b.commit = setting.Value
				if len(b.commit) > shortCommitLength {
					b.commit = b.commit[:shortCommitLength]
				}
			}
		case "vcs.modified":
			if !injectedCommit {
				b.dirty = setting.Value == "true"
			}
		case "vcs.time":
			if b.time == "unknown" && setting.Value != "" {
				b.time = setting.Value
			}
		}
	}
	return b
}

func (b build) String() string {
	dirty := ""
	if b.dirty {
		dirty = "-dirty"
	}
	return fmt.Sprintf("%s (%s%s, %s)", Version, b.commit, dirty, b.time)
}

// Info returns a formatted version string suitable for --version output.
func Info() string {
	return current().String()
}

// Full returns detailed version information including Go version.
func Full() string {
	return fmt.Sprintf("%s\n  Go: %s\n  Platform: %s/%s",
		Info(), runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

// Short returns just the version number.
func Short() string {
	return Version
}
