package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/thenoetrevino/pasomd/cmd"
	"github.com/thenoetrevino/pasomd/internal/cli"
)

func main() {
	if err := cmd.Execute(); err != nil {
		// Commands report their own failures; only cobra's usage errors reach here unprinted
		var exitErr *cli.CodedError
		if !errors.As(err, &exitErr) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(cli.ExitCode(err))
	}
}
