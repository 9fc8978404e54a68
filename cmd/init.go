package cmd

import (
	"context"
	"fmt"

	"github.com/olimci/dupdrive/pkg/config"
	"github.com/urfave/cli/v3"
)

func initCommand() *cli.Command {
	return &cli.Command{
		Name:   "init",
		Usage:  "write a default config file",
		Action: initAction,
	}
}

func initAction(_ context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() > 0 {
		return fmt.Errorf("init does not accept arguments")
	}

	path, _, err := configFilePath(cmd)
	if err != nil {
		return err
	}

	created, err := config.WriteDefault(path)
	if err != nil {
		return err
	}
	if !created {
		return fmt.Errorf("config already exists at %s", path)
	}

	fmt.Printf("wrote default config to %s\n", path)
	return nil
}
