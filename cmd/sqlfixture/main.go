package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/sqlfixture/internal/cli"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	rootCmd := cli.NewRootCmd()
	return rootCmd.Execute()
}
