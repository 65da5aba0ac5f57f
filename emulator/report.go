package emulator

import (
	"fmt"
	"io"
)

// Report writes the final machine state: the step count, program counter,
// status and condition codes, followed by every register and memory word
// that changed since the image was loaded.
func (emu *Emulator) Report(w io.Writer) (err error) {
	_, err = fmt.Fprintf(w, "Stopped in %d steps at PC = 0x%x.  Status '%v', CC %v\n",
		emu.Steps(), uint64(emu.Cpu.Pc), emu.Status, emu.Cpu.CC)
	if err != nil {
		return
	}

	_, err = fmt.Fprintf(w, "Changes to registers:\n")
	if err != nil {
		return
	}
	for reg, change := range emu.RegisterChanges() {
		_, err = fmt.Fprintf(w, "%v:\t0x%016x\t0x%016x\n", reg, uint64(change.Old), uint64(change.New))
		if err != nil {
			return
		}
	}

	_, err = fmt.Fprintf(w, "\nChanges to memory:\n")
	if err != nil {
		return
	}
	for addr, change := range emu.MemoryChanges() {
		_, err = fmt.Fprintf(w, "0x%016x:\t0x%016x\t0x%016x\n", addr, uint64(change.Old), uint64(change.New))
		if err != nil {
			return
		}
	}

	return
}
