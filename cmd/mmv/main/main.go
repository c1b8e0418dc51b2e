package main

import (
	"os"

	"github.com/arthur-debert/mmv/cmd/mmv"
)

func main() {
	os.Exit(mmv.Run(os.Args[1:], os.Stdout, os.Stderr))
}
