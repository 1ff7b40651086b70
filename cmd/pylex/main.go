package main

import (
	"os"

	"github.com/agenthands/pylex/cmd/pylex/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
