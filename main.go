package main

import (
	"os"

	"github.com/rmehra/retain/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
