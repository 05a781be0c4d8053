package main

import (
	"os"

	"github.com/spigell/resume-import/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
