package cmd

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/olimci/dupdrive/pkg/config"
	"github.com/urfave/cli/v3"
)

func showCommand() *cli.Command {
	return &cli.Command{
		Name:   "show",
		Usage:  "print the effective merged configuration",
		Action: showAction,
	}
}

func showAction(_ context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() > 0 {
		return fmt.Errorf("show does not accept arguments")
	}

	profile, err := loadProfile(cmd)
	if err != nil {
		return err
	}

	fmt.Println(heading("Profile"))
	printField("engine", profile.Binary)
	printField("source", profile.Source)
	printField("target", profile.Target)
	printField("name", profile.Name)
	printField("archive dir", profile.ArchiveDir)
	printField("cleanup", fmt.Sprintf("%t", profile.Cleanup))
	printField("debug", fmt.Sprintf("%t", profile.Debug))

	fmt.Println()
	fmt.Println(heading("Engine options"))
	if len(profile.Options) == 0 {
		fmt.Println(faint("  (none)"))
	} else {
		for _, key := range config.SortedOptionKeys(profile.Options) {
			values := profile.Options[key]
			if len(values) == 0 {
				fmt.Printf("  --%s\n", key)
				continue
			}
			for _, value := range values {
				fmt.Printf("  --%s %s\n", key, value)
			}
		}
	}

	fmt.Println()
	fmt.Println(heading("Environment"))
	if len(profile.Env) == 0 {
		fmt.Println(faint("  (none)"))
	} else {
		// values may hold secrets, print keys only
		keys := make([]string, 0, len(profile.Env))
		for key := range profile.Env {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			fmt.Printf("  %s %s\n", key, faint("(set)"))
		}
	}

	return nil
}

func printField(label, value string) {
	if strings.TrimSpace(value) == "" {
		value = faint("(unset)")
	}
	fmt.Printf("  %-12s %s\n", label, value)
}
