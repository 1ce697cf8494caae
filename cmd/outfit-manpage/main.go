package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/outfit/internal/cli"
	"github.com/arthur-debert/outfit/internal/version"
)

func main() {
	rootCmd := cli.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "OUTFIT",
		Section: "1",
		Source:  "outfit " + version.Version,
		Manual:  "outfit manual",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
