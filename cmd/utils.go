package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/olimci/dupdrive/pkg/config"
	"github.com/olimci/dupdrive/pkg/duplicity"
	"github.com/olimci/dupdrive/pkg/housekeep"
	"github.com/olimci/dupdrive/pkg/utils/fileutils"
	"github.com/urfave/cli/v3"
)

func rootString(cmd *cli.Command, name string) string {
	if cmd == nil {
		return ""
	}
	if value := cmd.String(name); value != "" {
		return value
	}
	root := cmd.Root()
	if root == nil {
		return ""
	}
	return root.String(name)
}

func rootBool(cmd *cli.Command, name string) bool {
	if cmd == nil {
		return false
	}
	if cmd.Bool(name) {
		return true
	}
	root := cmd.Root()
	return root != nil && root.Bool(name)
}

func configFilePath(cmd *cli.Command) (string, bool, error) {
	if explicit := rootString(cmd, "config"); explicit != "" {
		return explicit, true, nil
	}
	path, err := config.DefaultPath()
	return path, false, err
}

func loadConfig(cmd *cli.Command) (config.Config, error) {
	path, explicit, err := configFilePath(cmd)
	if err != nil {
		return config.Config{}, err
	}
	if explicit {
		return config.Load(path)
	}
	return config.LoadDefault()
}

func loadProfile(cmd *cli.Command) (config.Profile, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return config.Profile{}, err
	}

	cleanup, err := cleanupOverride(cmd)
	if err != nil {
		return config.Profile{}, err
	}

	return cfg.Resolve(config.Overrides{
		Source:  rootString(cmd, "source"),
		Target:  rootString(cmd, "target"),
		Name:    rootString(cmd, "name"),
		Debug:   rootBool(cmd, "debug"),
		DryRun:  rootBool(cmd, "dry-run"),
		Cleanup: cleanup,
	})
}

// cleanupOverride turns the --cleanup/--no-cleanup pair into a tri-state:
// nil when neither is given, so the config file keeps the say.
func cleanupOverride(cmd *cli.Command) (*bool, error) {
	on := rootBool(cmd, "cleanup")
	off := rootBool(cmd, "no-cleanup")

	if on && off {
		return nil, fmt.Errorf("--cleanup and --no-cleanup are mutually exclusive")
	}
	if on || off {
		return &on, nil
	}
	return nil, nil
}

func newLogger(debug bool) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "dupdrive",
	})
	if debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// runRequest is the shared invocation path: resolve the profile, run the
// pre-flight housekeeping, assemble arguments and hand off to the engine.
func runRequest(ctx context.Context, cmd *cli.Command, req duplicity.Request) error {
	profile, err := loadProfile(cmd)
	if err != nil {
		return err
	}
	logger := newLogger(profile.Debug)

	if needsSource(req.Action) && profile.Source != "" {
		exists, err := fileutils.PathExists(profile.Source)
		if err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("source path does not exist: %s", profile.Source)
		}
	}

	if profile.Cleanup && !profile.DryRun {
		report, err := housekeep.New().Clean(ctx, profile.SetArchivePath())
		if err != nil {
			return err
		}
		for _, path := range report.Removed {
			logger.Info("removed stale file", "path", path)
		}
	}

	args, err := duplicity.BuildArgs(profile, req)
	if err != nil {
		return err
	}

	return duplicity.NewRunner(profile, logger).Run(ctx, args)
}

func needsSource(action duplicity.Action) bool {
	switch action {
	case duplicity.ActionBackup, duplicity.ActionFull, duplicity.ActionIncr, duplicity.ActionVerify:
		return true
	default:
		return false
	}
}
