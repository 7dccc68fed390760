package main

import (
	"os"

	"github.com/iburimskiy/particlefield/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
