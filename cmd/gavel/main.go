package main

import (
	"os"

	"github.com/roach88/gavel/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
