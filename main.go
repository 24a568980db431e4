package main

import (
	"os"

	"github.com/ecoamazonia/guardioes/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
