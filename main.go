package main

import (
	"os"

	"github.com/akerl/prformat/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
