package main

import (
	"os"

	"github.com/skadvisory/findna/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
