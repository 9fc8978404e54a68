package config

import (
	"os"
	"os/user"
	"strings"
	"time"
)

// Macro placeholders recognized in config values. Expansion happens exactly
// once, after merging; unknown %...% sequences pass through untouched since
// the engine has escape sequences of its own.
const (
	MacroHostname = "HOSTNAME"
	MacroUser     = "USER"
	MacroHome     = "HOME"
	MacroDate     = "DATE"
	MacroSource   = "SOURCE"
	MacroName     = "NAME"
)

const dateLayout = "2006-01-02"

// ExpandMacros substitutes %KEY% placeholders from vars.
func ExpandMacros(s string, vars map[string]string) string {
	if s == "" || !strings.Contains(s, "%") {
		return s
	}
	for key, value := range vars {
		s = strings.ReplaceAll(s, "%"+key+"%", value)
	}
	return s
}

// baseMacroVars are the host-derived macros, available before the source
// path and set name are known.
func baseMacroVars(now time.Time) map[string]string {
	vars := map[string]string{
		MacroDate: now.Format(dateLayout),
	}

	if hostname, err := os.Hostname(); err == nil {
		vars[MacroHostname] = hostname
	}
	if home, err := os.UserHomeDir(); err == nil {
		vars[MacroHome] = home
	}
	if current, err := user.Current(); err == nil && current.Username != "" {
		vars[MacroUser] = current.Username
	}

	return vars
}
