package main

import (
	"os"

	"github.com/msto63/whenny/cmd/whenny/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
