// Package misc keeps program identity, values are set at build time with
// -ldflags "-X nametag/misc.version=...".
package misc

import (
	"runtime/debug"
)

const appName = "nametag"

var (
	version = "dev"
	gitHash string
)

// GetAppName returns program name.
func GetAppName() string {
	return appName
}

// GetVersion returns program version.
func GetVersion() string {
	return version
}

// GetGitHash returns revision program was built from, falling back to
// information recorded by the go tool.
func GetGitHash() string {
	if len(gitHash) > 0 {
		return gitHash
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" {
				return s.Value
			}
		}
	}
	return "unknown"
}
