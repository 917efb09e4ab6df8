package main

import (
	"os"

	"github.com/linskybing/projecthub-go/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
