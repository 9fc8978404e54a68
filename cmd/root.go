package cmd

import (
	"context"

	"github.com/olimci/dupdrive/pkg/version"
	"github.com/urfave/cli/v3"
)

// Commands:
// init
//   writes a default config file
//
// backup / full / incr
//   run a backup; plain backup lets the engine pick full vs incremental
//
// restore <dest> [file]
//   restore the whole set, or a single file, to dest
//
// verify / status / list
//   read-only inspection of the backup set
//
// rm <time> / frm <count> / rmincr <count> / cleanup
//   chain maintenance; destructive only with --force
//
// unlock
//   remove stale lock/part files left by an interrupted run
//
// show
//   print the effective merged configuration

func Execute(ctx context.Context, args []string) error {
	app := &cli.Command{
		Name:    "dupdrive",
		Usage:   "a config-driven front end for duplicity",
		Version: version.Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "config file path",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "enable debug logging",
			},
			&cli.BoolFlag{
				Name:    "dry-run",
				Aliases: []string{"n"},
				Usage:   "print the engine command line instead of running it",
			},
			&cli.StringFlag{
				Name:  "source",
				Usage: "override the backup source path",
			},
			&cli.StringFlag{
				Name:  "target",
				Usage: "override the backup target URL",
			},
			&cli.StringFlag{
				Name:  "name",
				Usage: "override the derived backup-set name",
			},
			&cli.BoolFlag{
				Name:  "cleanup",
				Usage: "force the pre-flight stale lock check on",
			},
			&cli.BoolFlag{
				Name:  "no-cleanup",
				Usage: "skip the pre-flight stale lock check",
			},
		},
		Commands: []*cli.Command{
			initCommand(),
			backupCommand(),
			fullCommand(),
			incrCommand(),
			restoreCommand(),
			verifyCommand(),
			statusCommand(),
			listCommand(),
			removeOlderCommand(),
			removeButFullCommand(),
			removeIncrCommand(),
			cleanupCommand(),
			unlockCommand(),
			showCommand(),
			versionCommand(),
		},
	}

	return app.Run(ctx, args)
}
