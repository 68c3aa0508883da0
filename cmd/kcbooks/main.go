package main

import (
	"os"

	"github.com/kashmir-carpentry/kcbooks/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
