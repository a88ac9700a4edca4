package main

import (
	"os"

	"github.com/teamlens/teamlens/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
