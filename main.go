package main

import (
	"fmt"
	"os"

	"github.com/kotolint/kotolint/internal/adapters/inbound/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "kotolint:", err)
		os.Exit(1)
	}
}
