package main

import (
	"os"

	"github.com/Kavirubc/gh-tracker/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
