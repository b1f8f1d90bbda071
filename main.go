package main

import (
	"os"

	"github.com/spigell/interview-agent/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
