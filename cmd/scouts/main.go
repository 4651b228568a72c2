package main

import (
	"os"

	"github.com/ansmoore/UrentScoutsBot/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
