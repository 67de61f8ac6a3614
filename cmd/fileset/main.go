package main

import (
	"os"

	"github.com/codeglade/fileset/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
