package main

import (
	"os"

	"nvramgen/cmd/nvramgen/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
