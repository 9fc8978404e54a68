package cmd

import (
	"context"
	"fmt"

	"github.com/olimci/dupdrive/pkg/duplicity"
	"github.com/urfave/cli/v3"
)

func verifyCommand() *cli.Command {
	return &cli.Command{
		Name:   "verify",
		Usage:  "compare the backup set against the source",
		Action: verifyAction,
	}
}

func verifyAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() > 0 {
		return fmt.Errorf("verify does not accept arguments")
	}
	return runRequest(ctx, cmd, duplicity.Request{Action: duplicity.ActionVerify})
}
