package version

import "time"

// Set at build time via -ldflags "-X ...".
var (
	Version   = ""
	Commit    = ""
	BuildTime = ""
)

type Info struct {
	Version   string
	Commit    string
	BuildTime string
}

// Resolve returns the build metadata, synthesizing a version string for
// unstamped development builds.
func Resolve() Info {
	info := Info{Version: Version, Commit: Commit, BuildTime: BuildTime}
	if info.Version == "" {
		info.Version = info.BuildTime
	}
	if info.Version == "" {
		info.Version = "dev-" + time.Now().UTC().Format("20060102T150405Z")
	}
	return info
}

// String renders "version (commit)" with the commit shortened.
func String() string {
	info := Resolve()
	if info.Commit == "" {
		return info.Version
	}
	commit := info.Commit
	if len(commit) > 12 {
		commit = commit[:12]
	}
	return info.Version + " (" + commit + ")"
}
