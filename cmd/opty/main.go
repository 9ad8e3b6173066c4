// Package main is the entry point for the opty-search server.
package main

import (
	"os"

	"github.com/donaldgifford/opty-search/cmd/opty/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
