package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/olimci/dupdrive/pkg/setname"
	"github.com/olimci/dupdrive/pkg/utils/fileutils"
)

// Overrides carries explicit command-line values. A non-empty string always
// wins over the config file; boolean flags only force-enable.
type Overrides struct {
	Source string
	Target string
	Name   string
	Debug  bool
	DryRun bool

	// Cleanup force-enables or force-disables the pre-flight housekeeping;
	// nil defers to the config file.
	Cleanup *bool
}

// Profile is the effective configuration for one engine invocation: merged,
// macro-expanded and with the set name derived.
type Profile struct {
	Binary     string
	Source     string // absolute path, empty when neither config nor CLI set one
	Target     string
	Name       string
	ArchiveDir string
	Debug      bool
	DryRun     bool
	Cleanup    bool
	Options    map[string][]string
	Env        map[string]string
}

// Resolve merges the config with overrides and expands macros. The merge
// never touches the receiver, so one Config can serve several invocations.
func (c Config) Resolve(ov Overrides) (Profile, error) {
	vars := baseMacroVars(time.Now())

	source := firstNonEmpty(ov.Source, c.Backup.Source)
	source = ExpandMacros(source, vars)
	if source != "" {
		abs, err := fileutils.AbsPath(source)
		if err != nil {
			return Profile{}, fmt.Errorf("resolve source: %w", err)
		}
		source = abs
	}

	name := firstNonEmpty(ov.Name, c.Backup.Name)
	name = ExpandMacros(name, vars)
	if name == "" {
		name = setname.Derive(source)
	}

	vars[MacroSource] = source
	vars[MacroName] = name

	target := firstNonEmpty(ov.Target, c.Backup.Target)
	target = ExpandMacros(target, vars)

	archiveDir := strings.TrimSpace(c.Tool.ArchiveDir)
	if archiveDir != "" {
		archiveDir = fileutils.ExpandHome(ExpandMacros(archiveDir, vars))
	}

	options, err := normalizeOptions(c.Options)
	if err != nil {
		return Profile{}, fmt.Errorf("invalid [options]: %w", err)
	}
	for key, values := range options {
		expanded := make([]string, len(values))
		for i, value := range values {
			expanded[i] = ExpandMacros(value, vars)
		}
		options[key] = expanded
	}

	env := make(map[string]string, len(c.Env))
	for key, value := range c.Env {
		env[key] = ExpandMacros(value, vars)
	}

	binary := firstNonEmpty(strings.TrimSpace(c.Tool.Duplicity), defaultBinary)

	cleanup := c.Tool.Cleanup
	if ov.Cleanup != nil {
		cleanup = *ov.Cleanup
	}

	return Profile{
		Binary:     binary,
		Source:     source,
		Target:     target,
		Name:       name,
		ArchiveDir: archiveDir,
		Debug:      ov.Debug || c.Tool.Debug,
		DryRun:     ov.DryRun,
		Cleanup:    cleanup,
		Options:    options,
		Env:        env,
	}, nil
}

// SetArchivePath is the archive cache subdirectory for this profile's set
// name, or empty when no archive dir is configured.
func (p Profile) SetArchivePath() string {
	if p.ArchiveDir == "" || p.Name == "" {
		return ""
	}
	return filepath.Join(p.ArchiveDir, p.Name)
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return strings.TrimSpace(value)
		}
	}
	return ""
}
