// main is the entry point for the showcase CLI.
package main

import (
	"github.com/gbb-community/showcase/cmd"
	"github.com/gbb-community/showcase/internal/catstore"
	"github.com/gbb-community/showcase/internal/contract"
)

func main() {
	err := cmd.Execute()
	catstore.CloseStore()
	if err != nil {
		contract.LogFatal("Command failed", err)
	}
}
