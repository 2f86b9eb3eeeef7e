package main

import (
	"os"

	"github.com/michoacana/antojo/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
