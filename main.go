// ABOUTME: Entry point for the trocamat CLI
// ABOUTME: Terminal client for the TrocaMat marketplace

package main

import (
	"fmt"
	"os"

	"github.com/Nelson-esilva/Trade-Site/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
