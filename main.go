package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/olimci/dupdrive/cmd"
	"github.com/olimci/dupdrive/pkg/duplicity"
)

func main() {
	if err := cmd.Execute(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)

		var exitErr *duplicity.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}
