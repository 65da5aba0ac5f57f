package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ezrec/y64/emulator"
	"github.com/ezrec/y64/io"
)

var simFlags struct {
	verbose bool
	expect  string
	memory  int
}

var simCmd = &cobra.Command{
	Use:   "sim file.bin [max_steps]",
	Short: "Simulate a Y64 memory image",
	Long: `Sim loads a binary memory image at address zero and executes it
until it halts, faults, or reaches max_steps (default 10000). It then
reports the final program counter, status and condition codes, and every
register and memory word that changed.

A .ys source file is assembled before it is run.

An --expect Starlark script is run against the final state; the command
fails if the script fails, calls fail(), or sets 'ok' to a false value.
`,
	Args: cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		runSim(args)
	},
}

func init() {
	flags := simCmd.Flags()
	flags.BoolVarP(&simFlags.verbose, "verbose", "v", false, "Verbose mode")
	flags.StringVar(&simFlags.expect, "expect", "", "Starlark script to check the final state")
	flags.IntVar(&simFlags.memory, "memory", emulator.MEM_SIZE, "Memory size in bytes")

	rootCmd.AddCommand(simCmd)
}

// simLimits checks the memory size and returns the step limit, from the
// optional max_steps argument.
func simLimits(memory int, args []string) (steps int, err error) {
	if memory < 0 {
		err = fmt.Errorf("--memory %d: %w", memory, emulator.ErrMemorySize)
		return
	}

	steps = emulator.MAX_STEPS
	if len(args) > 1 {
		steps, err = strconv.Atoi(args[1])
	}

	return
}

func runSim(args []string) {
	name := args[0]

	steps, err := simLimits(simFlags.memory, args)
	if err != nil {
		log.Fatalf("%v: %v", name, err)
	}

	emu := emulator.NewEmulator(simFlags.memory)
	emu.Verbose = simFlags.verbose
	emu.MaxSteps = steps

	if filepath.Ext(name) == io.SOURCE_EXT {
		prog := assemble(name, simFlags.verbose)
		err := emu.LoadProgram(prog)
		if err != nil {
			log.Fatalf("%v: %v", name, err)
		}
	} else {
		image, err := io.LoadImage(os.DirFS(filepath.Dir(name)), filepath.Base(name), emu.Memory.Len())
		if err != nil {
			log.Fatalf("%v: %v", name, err)
		}
		err = emu.Load(image)
		if err != nil {
			log.Fatalf("%v: %v", name, err)
		}
	}

	err = emu.Run()
	if err != nil && !errors.Is(err, emulator.ErrStepLimit) {
		log.Printf("%v: %v", name, err)
	}

	err = emu.Report(os.Stdout)
	if err != nil {
		log.Fatal(err)
	}

	if len(simFlags.expect) != 0 {
		script, err := os.ReadFile(simFlags.expect)
		if err != nil {
			log.Fatalf("%v: %v", simFlags.expect, err)
		}
		err = emu.Expect(simFlags.expect, script)
		if err != nil {
			log.Fatalf("%v: %v", simFlags.expect, err)
		}
	}
}
