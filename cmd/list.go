package cmd

import (
	"context"
	"fmt"

	"github.com/olimci/dupdrive/pkg/duplicity"
	"github.com/urfave/cli/v3"
)

func listCommand() *cli.Command {
	return &cli.Command{
		Name:    "list",
		Aliases: []string{"ls"},
		Usage:   "list the files in the current backup",
		Action:  listAction,
	}
}

func listAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() > 0 {
		return fmt.Errorf("list does not accept arguments")
	}
	return runRequest(ctx, cmd, duplicity.Request{Action: duplicity.ActionList})
}
