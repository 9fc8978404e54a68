package cmd

import (
	"context"
	"fmt"

	"github.com/olimci/dupdrive/pkg/duplicity"
	"github.com/urfave/cli/v3"
)

func cleanupCommand() *cli.Command {
	return &cli.Command{
		Name:   "cleanup",
		Usage:  "let the engine delete extraneous files from the target",
		Flags:  []cli.Flag{forceFlag()},
		Action: cleanupAction,
	}
}

func cleanupAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() > 0 {
		return fmt.Errorf("cleanup does not accept arguments")
	}
	return runRequest(ctx, cmd, duplicity.Request{
		Action: duplicity.ActionCleanup,
		Force:  cmd.Bool("force"),
	})
}
