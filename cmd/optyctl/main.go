// Package main is the entry point for the optyctl CLI client.
package main

import (
	"github.com/donaldgifford/opty-search/cmd/optyctl/cmd"
)

func main() {
	cmd.Execute()
}
