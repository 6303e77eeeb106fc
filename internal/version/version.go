package version

import (
	"strings"

	"github.com/fatih/color"
)

// Version information for the roost CLI.
// These variables can be overridden at build time via -ldflags.
var (
	// Version is the semantic version of the CLI.
	Version = "0.1.0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

var segmentColors = []color.Attribute{color.FgYellow, color.FgGreen, color.FgBlue}

// Colored returns Version with major, minor and patch painted in bold
// yellow, green and blue. Pre-release suffixes stay uncolored.
func Colored(enabled bool) string {
	core, suffix, hasSuffix := strings.Cut(Version, "-")
	parts := strings.SplitN(core, ".", len(segmentColors))
	for i, p := range parts {
		c := color.New(segmentColors[i], color.Bold)
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		parts[i] = c.Sprint(p)
	}
	out := strings.Join(parts, ".")
	if hasSuffix {
		out += "-" + suffix
	}
	return out
}

// String is the one-line description used by --version.
func String(colored bool) string {
	out := Colored(colored)
	if GitCommit != "" {
		out += " (" + GitCommit
		if BuildDate != "" {
			out += ", built " + BuildDate
		}
		out += ")"
	}
	return out
}
