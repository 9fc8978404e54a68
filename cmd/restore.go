package cmd

import (
	"context"
	"fmt"

	"github.com/olimci/dupdrive/pkg/duplicity"
	"github.com/olimci/dupdrive/pkg/utils/fileutils"
	"github.com/urfave/cli/v3"
)

func restoreCommand() *cli.Command {
	return &cli.Command{
		Name:      "restore",
		Aliases:   []string{"fetch"},
		Usage:     "restore the set, or a single file, into a destination",
		ArgsUsage: "<dest> [file]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "time",
				Aliases: []string{"t"},
				Usage:   "restore the state at this time (engine time format)",
			},
		},
		Action: restoreAction,
	}
}

func restoreAction(ctx context.Context, cmd *cli.Command) error {
	args := cmd.Args().Slice()
	if len(args) == 0 {
		return fmt.Errorf("restore requires a destination argument")
	}
	if len(args) > 2 {
		return fmt.Errorf("restore accepts a destination and at most one file")
	}

	dest, err := fileutils.AbsPath(args[0])
	if err != nil {
		return fmt.Errorf("resolve restore destination: %w", err)
	}

	req := duplicity.Request{
		Action:      duplicity.ActionRestore,
		RestoreDest: dest,
		RestoreTime: cmd.String("time"),
	}
	if len(args) == 2 {
		req.RestoreFile = args[1]
	}

	return runRequest(ctx, cmd, req)
}
