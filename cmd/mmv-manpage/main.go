package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/mmv/cmd/mmv"
	"github.com/arthur-debert/mmv/internal/version"
)

func main() {
	rootCmd := mmv.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "MMV",
		Section: "1",
		Source:  "mmv " + version.Version,
		Manual:  "mmv manual",
	}

	err := doc.GenMan(rootCmd, header, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
