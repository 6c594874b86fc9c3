package main

import (
	"os"

	"github.com/DonovanDMC/e621-go/internal/devcli/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
