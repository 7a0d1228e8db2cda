package main

import (
	"os"

	"github.com/xiam/minilisp/cmd/minilisp/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
