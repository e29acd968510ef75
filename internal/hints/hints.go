// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strings"

	"github.com/alnah/go-nbgen/internal/fileutil"
)

// IsInContainer detects if running inside a Docker container or similar.
// Checks for /.dockerenv file which Docker creates automatically.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// ForBrowserConnect returns hints for browser connection errors.
// Detects CI/Docker environment and suggests relevant environment variables.
func ForBrowserConnect(getenv func(string) string) string {
	var hints []string

	inCI := getenv("CI") != "" ||
		getenv("GITHUB_ACTIONS") != "" ||
		getenv("GITLAB_CI") != "" ||
		getenv("JENKINS_URL") != ""

	if (inCI || IsInContainer()) && getenv("ROD_NO_SANDBOX") != "1" {
		hints = append(hints, "set ROD_NO_SANDBOX=1 for Docker/CI")
	}
	if getenv("ROD_BROWSER_BIN") == "" {
		hints = append(hints, "set ROD_BROWSER_BIN to use custom Chrome")
	}

	return formatHints(hints)
}

// ForTimeout returns a hint about increasing timeout for slow builds.
func ForTimeout() string {
	return format("for large record sets or PDF export, use --timeout or NBGEN_TIMEOUT")
}

// ForConfigNotFound suggests --config and the user config directory.
func ForConfigNotFound() string {
	return format("use --config /path/to/file.yaml or create ~/.config/go-nbgen/<name>.yaml")
}

// ForNoInput explains the ways to name the record source.
func ForNoInput() string {
	return format("pass a records file, set input.path in config, or set NBGEN_INPUT")
}

// ForMalformedUnit reminds that units must be quoted in YAML, where 1.10
// would otherwise parse as the float 1.1.
func ForMalformedUnit() string {
	return format(`units look like "1.2" or "1.2.3"; quote them in YAML`)
}

// ForMissingColumn lists the accepted SQLite column names.
func ForMissingColumn(aliases map[string][]string) string {
	if len(aliases) == 0 {
		return ""
	}
	fields := []string{"kind", "unit", "body", "source"}
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		if names, ok := aliases[f]; ok {
			parts = append(parts, f+" ("+strings.Join(names, "|")+")")
		}
	}
	return format("accepted columns: " + strings.Join(parts, ", "))
}

// ForUnsupportedLanguage points at the language setting.
func ForUnsupportedLanguage() string {
	return format("use --language with a chroma lexer name such as python or go")
}

// ForStyleNotFound lists the built-in export styles.
func ForStyleNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
