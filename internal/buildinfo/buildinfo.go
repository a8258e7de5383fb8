// Package buildinfo carries the version stamped in with -ldflags, e.g.
//
//	-X wifidash/internal/buildinfo.Version=v0.3.0
package buildinfo

import "fmt"

var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Short returns the release version, else the commit, else "dev".
func Short() string {
	switch {
	case Version != "" && Version != "dev":
		return Version
	case Commit != "" && Commit != "unknown":
		return Commit
	default:
		return "dev"
	}
}

// String is the one-line banner logged at startup.
func String() string {
	return fmt.Sprintf("wifidash %s (commit %s, built %s)", Short(), Commit, Date)
}
