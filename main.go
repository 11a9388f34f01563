package main

import (
	"fmt"
	"os"

	"github.com/szuwgh/wordfreq/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "wordfreq:", err)
		os.Exit(1)
	}
}
