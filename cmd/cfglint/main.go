package main

import (
	"os"

	"github.com/driftlock/cfglint/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
