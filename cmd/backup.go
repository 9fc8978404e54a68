package cmd

import (
	"context"
	"fmt"

	"github.com/olimci/dupdrive/pkg/duplicity"
	"github.com/urfave/cli/v3"
)

func backupCommand() *cli.Command {
	return &cli.Command{
		Name:    "backup",
		Aliases: []string{"bkp"},
		Usage:   "back up the source (engine decides full vs incremental)",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "full",
				Usage: "force a full backup",
			},
		},
		Action: backupAction,
	}
}

func fullCommand() *cli.Command {
	return &cli.Command{
		Name:   "full",
		Usage:  "force a full backup",
		Action: fullAction,
	}
}

func incrCommand() *cli.Command {
	return &cli.Command{
		Name:   "incr",
		Usage:  "force an incremental backup",
		Action: incrAction,
	}
}

func backupAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() > 0 {
		return fmt.Errorf("backup does not accept arguments")
	}

	action := duplicity.ActionBackup
	if cmd.Bool("full") {
		action = duplicity.ActionFull
	}

	return runRequest(ctx, cmd, duplicity.Request{Action: action})
}

func fullAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() > 0 {
		return fmt.Errorf("full does not accept arguments")
	}
	return runRequest(ctx, cmd, duplicity.Request{Action: duplicity.ActionFull})
}

func incrAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() > 0 {
		return fmt.Errorf("incr does not accept arguments")
	}
	return runRequest(ctx, cmd, duplicity.Request{Action: duplicity.ActionIncr})
}
