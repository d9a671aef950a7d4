// Package version provides build version information for the console
// CLI. Values are overridable at build time via -ldflags.
package version

import (
	"fmt"
	"runtime"

	"github.com/Masterminds/semver/v3"
)

// Build information that can be set at compile time via -ldflags.
var (
	// Version is the semantic version of the module.
	Version = "0.1.0"

	// GitCommit is the git commit hash when the binary was built.
	GitCommit = "unknown"

	// BuildDate is the date when the binary was built.
	BuildDate = "unknown"
)

// Info represents the full version information.
type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"gitCommit"`
	BuildDate string `json:"buildDate"`
	GoVersion string `json:"goVersion"`
	Platform  string `json:"platform"`
}

// Get returns the current build's version info.
func Get() Info {
	return Info{
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// Valid reports whether Version parses as a semantic version. The
// release workflow checks this before tagging.
func Valid() bool {
	_, err := semver.NewVersion(Version)
	return err == nil
}

// String renders the version info on one line.
func (i Info) String() string {
	return fmt.Sprintf("devconsole v%s (%s, %s, %s)", i.Version, i.GitCommit, i.GoVersion, i.Platform)
}
