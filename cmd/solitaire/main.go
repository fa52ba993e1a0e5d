// Package main implements the solitaire command line tool. Without a
// subcommand it encrypts or decrypts stdin with the Solitaire cipher; the
// verify, keystream and shuffle subcommands expose the rest of the engine.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
