package main

import (
	"os"

	"github.com/pep299/vc-briefing/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
