package main

import (
	"os"

	"github.com/msto63/minipy/cmd/minipy/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
