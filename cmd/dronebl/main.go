package main

import (
	"os"

	"github.com/shivanshkc/dronebl/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
