package main

import (
	"os"

	"github.com/flameshq/flames/cmd/flames-schema/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
