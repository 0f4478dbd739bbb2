package main

import (
	"os"

	"github.com/conneroisu/devutils/cmd"
	"github.com/conneroisu/devutils/internal/errors"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(errors.ExitCode(err))
	}
}
