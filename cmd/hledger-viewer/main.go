package main

import (
	"os"

	"github.com/juev/hledger-viewer/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
