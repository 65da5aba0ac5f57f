// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package emulator runs Y64 binary images: it loads an image into a fresh
// CPU, snapshots the initial state, executes for a bounded number of steps
// and reports the changes against the snapshot.
package emulator

import (
	"errors"
	"fmt"
	"iter"
	"log"

	"github.com/ezrec/y64/asm"
	"github.com/ezrec/y64/cpu"
	"github.com/ezrec/y64/internal"
	"github.com/ezrec/y64/io"
)

const (
	MEM_SIZE  = cpu.MEM_SIZE // Default memory size.
	MAX_STEPS = 10000        // Default step limit.
)

// Emulator state. CPU + initial state snapshot.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *asm.Program // Program listing of the image, if known.
	MaxSteps int          // Step limit for Run.

	Status cpu.Status // Status of the last step.

	initRegister *cpu.Memory
	initMemory   *cpu.Memory
}

// NewEmulator creates a new emulator with size bytes of memory.
func NewEmulator(size int) (emu *Emulator) {
	emu = &Emulator{
		Cpu:      cpu.NewCpu(size),
		MaxSteps: MAX_STEPS,
	}

	emu.snapshot()

	return
}

func (emu *Emulator) snapshot() {
	emu.initRegister = emu.Cpu.Register.Clone()
	emu.initMemory = emu.Cpu.Memory.Clone()
}

// Load resets the CPU, places a binary image at address zero and takes the
// initial state snapshot.
func (emu *Emulator) Load(image []byte) (err error) {
	emu.Cpu.Verbose = emu.Verbose
	emu.Cpu.Reset()
	emu.Cpu.Memory.Reset()
	emu.Status = cpu.STAT_AOK

	err = emu.Cpu.Memory.Load(image)
	if err != nil {
		err = errors.Join(io.ErrImageTooLarge, err)
		return
	}

	if emu.Verbose {
		log.Printf("emulator: loaded %d bytes", len(image))
	}

	emu.snapshot()

	return
}

// LoadProgram loads the binary image of an assembled program, keeping the
// program for line attribution of runtime errors.
func (emu *Emulator) LoadProgram(prog *asm.Program) (err error) {
	image, err := prog.Binary()
	if err != nil {
		return
	}

	err = emu.Load(image)
	if err != nil {
		return
	}

	emu.Program = prog

	return
}

// Steps returns the number of steps executed since the last load.
func (emu *Emulator) Steps() int {
	return emu.Cpu.Ticks
}

// LineNo returns the source line number of the instruction at the program
// counter, or 0 if unknown.
func (emu *Emulator) LineNo() int {
	if emu.Program == nil {
		return 0
	}

	line, ok := emu.Program.Line(emu.Cpu.Pc)
	if !ok {
		return 0
	}

	return line.LineNo
}

// Tick performs a single step of the emulator.
//
// done is set when the CPU halts or faults. A halt is not an error; a fault
// is returned as an ErrRuntime.
func (emu *Emulator) Tick() (done bool, err error) {
	emu.Cpu.Verbose = emu.Verbose

	pc := emu.Cpu.Pc
	lineno := emu.LineNo()

	err = emu.Cpu.Tick()
	emu.Status = cpu.StatusOf(err)

	switch emu.Status {
	case cpu.STAT_AOK:
		return
	case cpu.STAT_HLT:
		done = true
		err = nil
	default:
		done = true
		err = &ErrRuntime{Pc: pc, LineNo: lineno, Err: err}
	}

	return
}

// Run steps the emulator until it halts, faults, or reaches MaxSteps.
//
// Reaching the step limit returns ErrStepLimit with Status left at AOK.
func (emu *Emulator) Run() (err error) {
	defer func() {
		if emu.Verbose {
			log.Printf("emulator: %v after %d steps, %d changes", emu.Status, emu.Steps(), internal.Count(emu.Changes()))
		}
	}()

	for emu.Steps() < emu.MaxSteps {
		var done bool
		done, err = emu.Tick()
		if done {
			return
		}
	}

	err = ErrStepLimit
	return
}

// RegisterChanges yields every register that differs from the snapshot.
func (emu *Emulator) RegisterChanges() iter.Seq2[cpu.Reg, cpu.Change] {
	return func(yield func(cpu.Reg, cpu.Change) bool) {
		for offset, change := range emu.initRegister.Diff(emu.Cpu.Register) {
			if !yield(cpu.Reg(offset/cpu.WORD_SIZE), change) {
				return
			}
		}
	}
}

// MemoryChanges yields the address of every memory word that differs from
// the snapshot.
func (emu *Emulator) MemoryChanges() iter.Seq2[int64, cpu.Change] {
	return emu.initMemory.Diff(emu.Cpu.Memory)
}

// Changes yields every changed location, registers first, named by
// register name or by hex address.
func (emu *Emulator) Changes() iter.Seq2[string, cpu.Change] {
	registers := func(yield func(string, cpu.Change) bool) {
		for reg, change := range emu.RegisterChanges() {
			if !yield(reg.String(), change) {
				return
			}
		}
	}
	memory := func(yield func(string, cpu.Change) bool) {
		for addr, change := range emu.MemoryChanges() {
			if !yield(fmt.Sprintf("0x%016x", addr), change) {
				return
			}
		}
	}

	return internal.Concat2(registers, memory)
}
