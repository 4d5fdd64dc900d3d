package main

import (
	"fmt"
	"os"

	"github.com/bgdnlp/facatura/internal/apperr"
	"github.com/bgdnlp/facatura/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(apperr.ExitCode(err))
	}
}
