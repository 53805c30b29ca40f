// Package main is the entry point for the wavescale CLI.
//
// Usage:
//
//	wavescale [flags] <command> [args]
//
// Commands:
//
//	scale      - Render major/minor scales from a (random) start note
//	tone       - Render a single waveform to a file
//	notes      - List the 88-note frequency table
//	plot       - Draw a waveform or WAV file as a terminal chart
//	config     - Manage render profiles
//	version    - Show version information
package main

import (
	"fmt"
	"os"

	"github.com/haivivi/wavescale/cmd/wavescale/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
