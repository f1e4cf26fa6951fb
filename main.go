package main

import (
	"os"

	"github.com/secpath/secpath/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
