package main

import (
	"os"

	"calc/cmd/calc/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
