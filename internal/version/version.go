// In file: internal/version/version.go

// Package version carries the build metadata printed by --version. The
// variables are set at link time, e.g.
//
//	go build -ldflags "-X github.com/dileep-u-k/weather-chat/internal/version.version=v1.2.0"
package version

import (
	"fmt"
	"runtime"
)

var (
	version   = "dev"
	buildDate = "unknown"
	gitCommit = "unknown"
)

// BuildInfo describes the running binary.
type BuildInfo struct {
	Version, BuildDate, GitCommit, GoVersion, Platform string
}

func Get() BuildInfo {
	return BuildInfo{
		Version:   version,
		BuildDate: buildDate,
		GitCommit: gitCommit,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// String renders the build info on one line for cobra's version template.
func (b BuildInfo) String() string {
	return fmt.Sprintf("%s (commit %s, built %s, %s %s)", b.Version, b.GitCommit, b.BuildDate, b.GoVersion, b.Platform)
}
