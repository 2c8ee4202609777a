package main

import (
	"os"

	"github.com/abhisek/mathlens/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
