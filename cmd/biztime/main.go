package main

import (
	"os"

	"github.com/abrezinsky/biztime/cmd/biztime/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
