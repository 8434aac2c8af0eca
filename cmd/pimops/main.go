package main

import (
	"os"

	"github.com/boardlane/pimops/cmd/pimops/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
