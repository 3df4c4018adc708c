package main

import (
	"os"

	"github.com/see-reach/seereach/cmd/seereach/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
