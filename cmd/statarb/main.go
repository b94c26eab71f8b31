package main

import (
	"os"

	"github.com/rustyeddy/statarb/cmd/statarb/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
