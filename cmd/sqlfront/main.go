package main

import (
	"os"

	"github.com/freeeve/sqlfront/cmd/sqlfront/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
