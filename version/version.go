// Package version provides build version information embedding.
package version

import (
	"runtime/debug"
)

// Version is set at build time using -ldflags.
var Version = "dev"

// Short returns the version, suffixed with the VCS revision when the binary
// carries one.
func Short() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return Version
	}
	for _, setting := range info.Settings {
		if setting.Key == "vcs.revision" && setting.Value != "" {
			rev := setting.Value
			if len(rev) > 7 {
				rev = rev[:7]
			}
			return Version + "-" + rev
		}
	}
	return Version
}
