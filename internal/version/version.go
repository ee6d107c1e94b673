// Package version reports build identity for headcursor binaries.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
	"time"
)

// Set at link time:
//
//	go build -ldflags="-X github.com/muurk/headcursor/internal/version.Version=v0.3.0 \
//	                   -X github.com/muurk/headcursor/internal/version.Commit=abc1234"
//
// Unset values come from the embedded VCS stamp, else "dev".
var (
	Version = ""
	Commit  = ""
	// Built is the commit or build time, RFC 3339
	Built = ""
)

func init() {
	if info, ok := debug.ReadBuildInfo(); ok {
		fillFromSettings(info.Settings)
	}
	if Version == "" {
		Version = "dev"
	}
	if Commit == "" {
		Commit = "unknown"
	}
}

// fillFromSettings fills unset fields from build-info VCS settings.
func fillFromSettings(settings []debug.BuildSetting) {
	vcs := make(map[string]string, len(settings))
	for _, s := range settings {
		if strings.HasPrefix(s.Key, "vcs.") {
			vcs[s.Key] = s.Value
		}
	}

	if Commit == "" {
		if rev := vcs["vcs.revision"]; rev != "" {
			if len(rev) > 7 {
				rev = rev[:7]
			}
			if vcs["vcs.modified"] == "true" {
				rev += "-dirty"
			}
			Commit = rev
		}
	}

	if Built == "" {
		Built = vcs["vcs.time"]
	}

	if Version == "" && Built != "" {
		if t, err := time.Parse(time.RFC3339, Built); err == nil {
			Version = "dev-" + t.UTC().Format("20060102")
		}
	}
}

// Full returns version, commit and platform on one line.
func Full() string {
	s := fmt.Sprintf("%s (commit: %s, %s %s/%s)", Version, Commit, runtime.Version(), runtime.GOOS, runtime.GOARCH)
	if Built != "" {
		s += " built " + Built
	}
	return s
}
