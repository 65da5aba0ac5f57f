package cpu

import (
	"errors"
	"fmt"
	"log"
)

const (
	REG_SIZE = int(REG_NONE) * WORD_SIZE // Register file size in bytes.
	MEM_SIZE = 1 << 13                   // Default memory size in bytes.
)

// Status is the result of a single execution step.
type Status int

//go:generate go tool stringer -linecomment -type=Status
const (
	STAT_AOK = Status(0) // AOK
	STAT_HLT = Status(1) // HLT
	STAT_ADR = Status(2) // ADR
	STAT_INS = Status(3) // INS
)

// StatusOf maps a Tick error to its status.
func StatusOf(err error) Status {
	switch {
	case err == nil:
		return STAT_AOK
	case errors.Is(err, ErrHalt):
		return STAT_HLT
	case errors.Is(err, ErrAddress):
		return STAT_ADR
	default:
		return STAT_INS
	}
}

// Cpu is the simulation context of a Y64 processor.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Pc       int64   // Program counter.
	Register *Memory // Register file, register id * 8 is the offset.
	Memory   *Memory // Main memory.
	CC       CC      // Condition codes.

	Ticks int // Instructions executed since reset.
}

// NewCpu creates a new CPU with size bytes of memory.
func NewCpu(size int) (cpu *Cpu) {
	cpu = &Cpu{
		Register: NewMemory(REG_SIZE),
		Memory:   NewMemory(size),
		CC:       DEFAULT_CC,
	}

	return
}

// Reset the CPU state.
// - Clears the program counter and registers.
// - Restores the default condition codes.
// - Zeros the tick counter.
// Memory is left untouched.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	cpu.Pc = 0
	cpu.Register.Reset()
	cpu.CC = DEFAULT_CC
	cpu.Ticks = 0
}

// Reg returns the value of a register; REG_NONE reads as zero.
func (cpu *Cpu) Reg(id Reg) (value int64) {
	if !id.Valid() {
		return
	}
	value, _ = cpu.Register.Long(int64(id) * WORD_SIZE)
	return
}

// SetReg sets the value of a register; writes to REG_NONE are dropped.
func (cpu *Cpu) SetReg(id Reg, value int64) {
	if !id.Valid() {
		return
	}
	cpu.Register.SetLong(int64(id)*WORD_SIZE, value)
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	text += fmt.Sprintf("% 5s: 0x%016x\n", "pc", cpu.Pc)
	text += fmt.Sprintf("% 5s: %v\n", "cc", cpu.CC)
	for id := REG_RAX; id < REG_NONE; id++ {
		text += fmt.Sprintf("% 5s: 0x%016x\n", id.String(), cpu.Reg(id))
	}

	return
}

// FetchCode fetches and decodes the instruction at the program counter.
func (cpu *Cpu) FetchCode() (code Code, err error) {
	code, err = Decode(cpu.Memory, cpu.Pc)
	if err != nil {
		if errors.Is(err, ErrAddress) {
			err = errors.Join(ErrOpcodeFetch, ErrBadAddress(cpu.Pc))
		}
		return
	}

	return
}

// Tick executes a single instruction.
//
// ErrHalt is returned when a halt instruction is reached, an error wrapping
// ErrAddress or ErrInstruction when the instruction faults. In all of
// these cases the program counter is left at the faulting instruction.
func (cpu *Cpu) Tick() (err error) {
	cpu.Ticks++

	code, err := cpu.FetchCode()
	if err != nil {
		if cpu.Verbose {
			log.Printf("%03x: %v", cpu.Pc, err)
		}
		return
	}

	err = cpu.Execute(code)
	return
}

// Step executes a single instruction and returns its status.
func (cpu *Cpu) Step() Status {
	return StatusOf(cpu.Tick())
}

// Execute executes a single decoded instruction at the program counter.
func (cpu *Cpu) Execute(code Code) (err error) {
	defer func() {
		if err != nil && !errors.Is(err, ErrHalt) {
			err = errors.Join(ErrOpcode(code), err)
		}
	}()
	if cpu.Verbose {
		log.Printf("%03x: %v", cpu.Pc, code)
	}

	err = code.Valid()
	if err != nil {
		err = errors.Join(ErrInstruction, err)
		return
	}

	next_pc := cpu.Pc + int64(code.Len())
	ra := code.RegA()
	rb := code.RegB()

	switch code.Class() {
	case I_HALT:
		err = ErrHalt
		return
	case I_NOP:
		// pass
	case I_RRMOVQ:
		if code.Cond().Test(cpu.CC) {
			cpu.SetReg(rb, cpu.Reg(ra))
		}
	case I_IRMOVQ:
		cpu.SetReg(rb, code.Value)
	case I_RMMOVQ:
		addr := cpu.Reg(rb) + code.Value
		if !cpu.Memory.SetLong(addr, cpu.Reg(ra)) {
			err = errors.Join(ErrOpcodeData, ErrBadAddress(addr))
			return
		}
	case I_MRMOVQ:
		addr := cpu.Reg(rb) + code.Value
		value, ok := cpu.Memory.Long(addr)
		if !ok {
			err = errors.Join(ErrOpcodeData, ErrBadAddress(addr))
			return
		}
		cpu.SetReg(ra, value)
	case I_ALU:
		var value int64
		value, cpu.CC = doAlu(code.AluOp(), cpu.Reg(ra), cpu.Reg(rb))
		cpu.SetReg(rb, value)
	case I_JXX:
		if code.Cond().Test(cpu.CC) {
			next_pc = code.Value
		}
	case I_CALL:
		sp := cpu.Reg(REG_RSP) - WORD_SIZE
		if !cpu.Memory.SetLong(sp, next_pc) {
			err = errors.Join(ErrOpcodeStack, ErrBadAddress(sp))
			return
		}
		cpu.SetReg(REG_RSP, sp)
		next_pc = code.Value
	case I_RET:
		sp := cpu.Reg(REG_RSP)
		value, ok := cpu.Memory.Long(sp)
		if !ok {
			err = errors.Join(ErrOpcodeStack, ErrBadAddress(sp))
			return
		}
		cpu.SetReg(REG_RSP, sp+WORD_SIZE)
		next_pc = value
	case I_PUSHQ:
		value := cpu.Reg(ra)
		sp := cpu.Reg(REG_RSP) - WORD_SIZE
		if !cpu.Memory.SetLong(sp, value) {
			err = errors.Join(ErrOpcodeStack, ErrBadAddress(sp))
			return
		}
		cpu.SetReg(REG_RSP, sp)
	case I_POPQ:
		sp := cpu.Reg(REG_RSP)
		value, ok := cpu.Memory.Long(sp)
		if !ok {
			err = errors.Join(ErrOpcodeStack, ErrBadAddress(sp))
			return
		}
		cpu.SetReg(REG_RSP, sp+WORD_SIZE)
		cpu.SetReg(ra, value)
	default:
		err = errors.Join(ErrInstruction, ErrOpcodeClass)
		return
	}

	cpu.Pc = next_pc

	return
}
