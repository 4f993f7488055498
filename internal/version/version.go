// Package version holds build information injected at link time:
//
//	go build -ldflags "-X github.com/HerbHall/opticode/internal/version.Version=v0.2.0"
package version

import (
	"fmt"
	"runtime"
)

var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Short returns the version string alone.
func Short() string {
	return Version
}

// Info returns a one-line description of the build.
func Info() string {
	return fmt.Sprintf("opticode %s (commit %s, built %s, %s %s/%s)",
		Version, GitCommit, BuildDate, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
