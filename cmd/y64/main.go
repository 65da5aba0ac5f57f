// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Command y64 assembles and simulates Y64 programs.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "y64",
	Short: "Y64 assembler and simulator",
	Long: `y64 is the toolchain for the Y64 instruction set.

'y64 asm' assembles a .ys source file into a .bin memory image, and
'y64 sim' runs a memory image and reports the changes it made to the
registers and memory.
`,
}

func main() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
