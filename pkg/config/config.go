// Package config owns the merged configuration record: tool settings, the
// backup profile, pass-through engine options and environment entries, plus
// the precedence rules between config-file values and command-line overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/olimci/dupdrive/pkg/version"
)

const (
	dirName    = "dupdrive"
	configFile = "config.toml"
	envConfig  = "DUPDRIVE_CONFIG"

	defaultBinary     = "duplicity"
	defaultArchiveDir = "~/.cache/duplicity"
)

// Config mirrors the on-disk TOML layout.
type Config struct {
	Tool   Tool   `toml:"tool"`
	Backup Backup `toml:"backup"`

	// Options are pass-through engine options: value or list of values per
	// key, forwarded verbatim as long options. Normalized by Load.
	Options map[string]any `toml:"options,omitempty"`

	// Env is exported into the engine process environment.
	Env map[string]string `toml:"env,omitempty"`
}

type Tool struct {
	Version    string `toml:"version,omitempty"` // config compatibility check
	Duplicity  string `toml:"duplicity"`         // engine binary, resolved via $PATH when relative
	Debug      bool   `toml:"debug"`
	Cleanup    bool   `toml:"cleanup"` // pre-flight stale lock/part housekeeping
	ArchiveDir string `toml:"archive_dir"`
}

type Backup struct {
	Source string `toml:"source"`
	Target string `toml:"target"`
	Name   string `toml:"name"` // derived from source when empty
}

func DefaultConfig() Config {
	return Config{
		Tool: Tool{
			Version:    version.Version,
			Duplicity:  defaultBinary,
			Cleanup:    true,
			ArchiveDir: defaultArchiveDir,
		},
	}
}

// DefaultPath resolves the config file location: the DUPDRIVE_CONFIG
// environment variable when set, the user config directory otherwise.
func DefaultPath() (string, error) {
	if custom := strings.TrimSpace(os.Getenv(envConfig)); custom != "" {
		abs, err := filepath.Abs(custom)
		if err != nil {
			return "", fmt.Errorf("resolve %s: %w", envConfig, err)
		}
		return abs, nil
	}

	cfgDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config directory: %w", err)
	}

	return filepath.Join(cfgDir, dirName, configFile), nil
}
