package main

import (
	"os"

	"github.com/boussole-app/boussole/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
