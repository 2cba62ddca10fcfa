package main

import (
	"fmt"
	"os"

	"github.com/sandeepkv93/noozes/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "noozes: %v\n", err)
		os.Exit(1)
	}
}
