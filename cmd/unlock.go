package cmd

import (
	"context"
	"fmt"

	"github.com/olimci/dupdrive/pkg/housekeep"
	"github.com/urfave/cli/v3"
)

func unlockCommand() *cli.Command {
	return &cli.Command{
		Name:   "unlock",
		Usage:  "remove stale lock and part files left by an interrupted run",
		Action: unlockAction,
	}
}

func unlockAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() > 0 {
		return fmt.Errorf("unlock does not accept arguments")
	}

	profile, err := loadProfile(cmd)
	if err != nil {
		return err
	}

	archive := profile.SetArchivePath()
	if archive == "" {
		return fmt.Errorf("no archive directory to clean (set tool.archive_dir and a source or name)")
	}

	report, err := housekeep.New().Clean(ctx, archive)
	if err != nil {
		return err
	}

	if len(report.Removed) == 0 {
		fmt.Printf("nothing stale in %s\n", faint(archive))
		return nil
	}

	fmt.Printf("removed %d stale file(s):\n", len(report.Removed))
	for _, path := range report.Removed {
		fmt.Printf("  %s\n", path)
	}
	return nil
}
