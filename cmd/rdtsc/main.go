// Command rdtsc reads the CPU cycle counter from the command line.
package main

import (
	"os"

	"github.com/cwbudde/rdtsc/cmd/rdtsc/command"
)

func main() {
	if err := command.RootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
