// Package setname derives canonical backup-set names from source paths.
//
// The set name identifies one backup chain to the engine (duplicity --name)
// and doubles as the archive cache subdirectory. Equivalent paths always
// derive the same name; configs backing up unusual paths can pin an explicit
// name instead of relying on derivation.
package setname

import (
	"path/filepath"
	"strings"
)

// Root is the set name for the filesystem root, which would otherwise
// reduce to an empty string.
const Root = "root"

// Derive maps a source path to its canonical set name: the cleaned path with
// separators, spaces and drive colons replaced by dashes and the leading
// separator stripped. An empty source yields an empty name.
func Derive(source string) string {
	trimmed := strings.TrimSpace(source)
	if trimmed == "" {
		return ""
	}

	clean := filepath.Clean(trimmed)
	clean = filepath.ToSlash(clean)
	clean = strings.Trim(clean, "/")
	if clean == "" || clean == "." {
		return Root
	}

	replacer := strings.NewReplacer(
		"/", "-",
		" ", "-",
		":", "-",
	)
	name := replacer.Replace(clean)

	for strings.Contains(name, "--") {
		name = strings.ReplaceAll(name, "--", "-")
	}

	return strings.Trim(name, "-")
}
