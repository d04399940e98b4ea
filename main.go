package main

import (
	"os"

	"github.com/unholyblue/bloom/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
