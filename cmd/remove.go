package cmd

import (
	"context"
	"fmt"

	"github.com/olimci/dupdrive/pkg/duplicity"
	"github.com/urfave/cli/v3"
)

func forceFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:    "force",
		Aliases: []string{"f"},
		Usage:   "actually delete; without it the engine only reports",
	}
}

func removeOlderCommand() *cli.Command {
	return &cli.Command{
		Name:      "rm",
		Usage:     "remove backup sets older than the given time",
		ArgsUsage: "<time>",
		Flags:     []cli.Flag{forceFlag()},
		Action:    removeOlderAction,
	}
}

func removeButFullCommand() *cli.Command {
	return &cli.Command{
		Name:      "frm",
		Usage:     "keep only the last N full backup chains",
		ArgsUsage: "<count>",
		Flags:     []cli.Flag{forceFlag()},
		Action:    removeButFullAction,
	}
}

func removeIncrCommand() *cli.Command {
	return &cli.Command{
		Name:      "rmincr",
		Usage:     "remove incrementals of all but the last N full backups",
		ArgsUsage: "<count>",
		Flags:     []cli.Flag{forceFlag()},
		Action:    removeIncrAction,
	}
}

func removeOlderAction(ctx context.Context, cmd *cli.Command) error {
	return removalRequest(ctx, cmd, duplicity.ActionRemoveOlder)
}

func removeButFullAction(ctx context.Context, cmd *cli.Command) error {
	return removalRequest(ctx, cmd, duplicity.ActionRemoveButFull)
}

func removeIncrAction(ctx context.Context, cmd *cli.Command) error {
	return removalRequest(ctx, cmd, duplicity.ActionRemoveIncrOf)
}

func removalRequest(ctx context.Context, cmd *cli.Command, action duplicity.Action) error {
	args := cmd.Args().Slice()
	if len(args) != 1 {
		return fmt.Errorf("%s requires exactly one argument", cmd.Name)
	}

	return runRequest(ctx, cmd, duplicity.Request{
		Action: action,
		Arg:    args[0],
		Force:  cmd.Bool("force"),
	})
}
