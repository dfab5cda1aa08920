package main

import (
	"os"

	"github.com/hhplan/household-planner/cmd/hhplan/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
