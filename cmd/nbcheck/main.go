// Package main provides the CLI entry point for nbcheck.
package main

import (
	"os"

	"github.com/leapstack-labs/nbcheck/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
