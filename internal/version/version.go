// Package version records the CLI's build metadata.
package version

import (
	"strings"

	"github.com/fatih/color"
)

// Overridable at build time via -ldflags.
var (
	// Version is the semantic version of the CLI.
	Version = "0.1.0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

var partColors = []*color.Color{
	color.New(color.FgYellow, color.Bold),
	color.New(color.FgGreen, color.Bold),
	color.New(color.FgBlue, color.Bold),
}

// Colored renders Version with the major, minor and patch parts
// highlighted. A pre-release suffix shares the patch part's color.
func Colored() string {
	parts := strings.SplitN(Version, ".", 3)
	for i, part := range parts {
		parts[i] = partColors[i].Sprint(part)
	}
	return strings.Join(parts, ".")
}
