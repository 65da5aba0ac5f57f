package cpu

import (
	"encoding/binary"
	"fmt"
)

// CodeClass is the instruction class, the high nibble of an opcode.
type CodeClass int

//go:generate go tool stringer -linecomment -type=CodeClass
const (
	I_HALT      = CodeClass(0x0) // halt
	I_NOP       = CodeClass(0x1) // nop
	I_RRMOVQ    = CodeClass(0x2) // rrmovq
	I_IRMOVQ    = CodeClass(0x3) // irmovq
	I_RMMOVQ    = CodeClass(0x4) // rmmovq
	I_MRMOVQ    = CodeClass(0x5) // mrmovq
	I_ALU       = CodeClass(0x6) // alu
	I_JXX       = CodeClass(0x7) // jxx
	I_CALL      = CodeClass(0x8) // call
	I_RET       = CodeClass(0x9) // ret
	I_PUSHQ     = CodeClass(0xa) // pushq
	I_POPQ      = CodeClass(0xb) // popq
	I_DIRECTIVE = CodeClass(0xc) // directive
)

// CodeAluOp is the function of an I_ALU instruction.
type CodeAluOp int

//go:generate go tool stringer -linecomment -type=CodeAluOp
const (
	A_ADD = CodeAluOp(0) // addq
	A_SUB = CodeAluOp(1) // subq
	A_AND = CodeAluOp(2) // andq
	A_XOR = CodeAluOp(3) // xorq
)

// Directive functions, only meaningful to the assembler.
const (
	D_DATA  = 0
	D_POS   = 1
	D_ALIGN = 2
)

// Reg is a register identifier.
type Reg int

//go:generate go tool stringer -linecomment -type=Reg
const (
	REG_RAX  = Reg(0)  // %rax
	REG_RCX  = Reg(1)  // %rcx
	REG_RDX  = Reg(2)  // %rdx
	REG_RBX  = Reg(3)  // %rbx
	REG_RSP  = Reg(4)  // %rsp
	REG_RBP  = Reg(5)  // %rbp
	REG_RSI  = Reg(6)  // %rsi
	REG_RDI  = Reg(7)  // %rdi
	REG_R8   = Reg(8)  // %r8
	REG_R9   = Reg(9)  // %r9
	REG_R10  = Reg(10) // %r10
	REG_R11  = Reg(11) // %r11
	REG_R12  = Reg(12) // %r12
	REG_R13  = Reg(13) // %r13
	REG_R14  = Reg(14) // %r14
	REG_NONE = Reg(15) // ----
)

// Valid returns true for the fifteen addressable registers.
func (reg Reg) Valid() bool {
	return reg >= REG_RAX && reg < REG_NONE
}

// Pack builds an opcode byte from a class and function.
func Pack(class CodeClass, fn int) byte {
	return byte(class)<<4 | byte(fn&0xf)
}

// Instr is an entry of the instruction table.
type Instr struct {
	Name  string // Mnemonic.
	Code  byte   // Opcode byte, class:function.
	Bytes int    // Encoded length.
}

// Class returns the instruction class of the entry.
func (in Instr) Class() CodeClass {
	return CodeClass(in.Code >> 4)
}

// Func returns the function of the entry.
func (in Instr) Func() int {
	return int(in.Code & 0xf)
}

// InstrSet is the fixed instruction and directive table.
var InstrSet = []Instr{
	{"nop", Pack(I_NOP, 0), 1},
	{"halt", Pack(I_HALT, 0), 1},
	{"rrmovq", Pack(I_RRMOVQ, int(C_YES)), 2},
	{"cmovle", Pack(I_RRMOVQ, int(C_LE)), 2},
	{"cmovl", Pack(I_RRMOVQ, int(C_L)), 2},
	{"cmove", Pack(I_RRMOVQ, int(C_E)), 2},
	{"cmovne", Pack(I_RRMOVQ, int(C_NE)), 2},
	{"cmovge", Pack(I_RRMOVQ, int(C_GE)), 2},
	{"cmovg", Pack(I_RRMOVQ, int(C_G)), 2},
	{"irmovq", Pack(I_IRMOVQ, 0), 10},
	{"rmmovq", Pack(I_RMMOVQ, 0), 10},
	{"mrmovq", Pack(I_MRMOVQ, 0), 10},
	{"addq", Pack(I_ALU, int(A_ADD)), 2},
	{"subq", Pack(I_ALU, int(A_SUB)), 2},
	{"andq", Pack(I_ALU, int(A_AND)), 2},
	{"xorq", Pack(I_ALU, int(A_XOR)), 2},
	{"jmp", Pack(I_JXX, int(C_YES)), 9},
	{"jle", Pack(I_JXX, int(C_LE)), 9},
	{"jl", Pack(I_JXX, int(C_L)), 9},
	{"je", Pack(I_JXX, int(C_E)), 9},
	{"jne", Pack(I_JXX, int(C_NE)), 9},
	{"jge", Pack(I_JXX, int(C_GE)), 9},
	{"jg", Pack(I_JXX, int(C_G)), 9},
	{"call", Pack(I_CALL, 0), 9},
	{"ret", Pack(I_RET, 0), 1},
	{"pushq", Pack(I_PUSHQ, 0), 2},
	{"popq", Pack(I_POPQ, 0), 2},
	{".byte", Pack(I_DIRECTIVE, D_DATA), 1},
	{".word", Pack(I_DIRECTIVE, D_DATA), 2},
	{".long", Pack(I_DIRECTIVE, D_DATA), 4},
	{".quad", Pack(I_DIRECTIVE, D_DATA), 8},
	{".pos", Pack(I_DIRECTIVE, D_POS), 0},
	{".align", Pack(I_DIRECTIVE, D_ALIGN), 0},
}

var instrMap = map[string]Instr{}

func init() {
	for _, in := range InstrSet {
		instrMap[in.Name] = in
	}
}

// FindInstr looks up an instruction or directive by exact mnemonic.
func FindInstr(name string) (in Instr, ok bool) {
	in, ok = instrMap[name]
	return
}

// mnemonic returns the machine instruction name for an opcode byte.
func mnemonic(op byte) string {
	for _, in := range InstrSet {
		if in.Code == op && in.Class() != I_DIRECTIVE {
			return in.Name
		}
	}
	return fmt.Sprintf("0x%02x", op)
}

// Code is a single decoded instruction.
type Code struct {
	Op    byte  // Opcode, class:function.
	Regs  byte  // Register byte rA:rB, if the class has one.
	Value int64 // Immediate, displacement, or destination, if the class has one.
}

// MakeCode creates an instruction with no operands (halt, nop, ret).
func MakeCode(op byte) Code {
	return Code{Op: op}
}

// MakeCodeRegs creates an instruction with only a register byte.
func MakeCodeRegs(op byte, ra, rb Reg) Code {
	return Code{Op: op, Regs: byte(ra&0xf)<<4 | byte(rb&0xf)}
}

// MakeCodeValue creates an instruction with a register byte and an 8-byte value.
func MakeCodeValue(op byte, ra, rb Reg, value int64) Code {
	code := MakeCodeRegs(op, ra, rb)
	code.Value = value
	return code
}

// MakeCodeDest creates a jump or call to dest.
func MakeCodeDest(op byte, dest int64) Code {
	return Code{Op: op, Value: dest}
}

// Class returns the instruction class.
func (code Code) Class() CodeClass {
	return CodeClass(code.Op >> 4)
}

// Func returns the instruction function.
func (code Code) Func() int {
	return int(code.Op & 0xf)
}

// Cond returns the function as a condition predicate.
func (code Code) Cond() CodeCond {
	return CodeCond(code.Func())
}

// AluOp returns the function as an ALU operation.
func (code Code) AluOp() CodeAluOp {
	return CodeAluOp(code.Func())
}

// RegA returns the rA field of the register byte.
func (code Code) RegA() Reg {
	return Reg(code.Regs >> 4)
}

// RegB returns the rB field of the register byte.
func (code Code) RegB() Reg {
	return Reg(code.Regs & 0xf)
}

// hasRegs returns true if the class encodes a register byte.
func (class CodeClass) hasRegs() bool {
	switch class {
	case I_RRMOVQ, I_IRMOVQ, I_RMMOVQ, I_MRMOVQ, I_ALU, I_PUSHQ, I_POPQ:
		return true
	}
	return false
}

// hasValue returns true if the class encodes an 8-byte value.
func (class CodeClass) hasValue() bool {
	switch class {
	case I_IRMOVQ, I_RMMOVQ, I_MRMOVQ, I_JXX, I_CALL:
		return true
	}
	return false
}

// Len returns the encoded length of the instruction.
func (code Code) Len() int {
	class := code.Class()
	n := 1
	if class.hasRegs() {
		n += 1
	}
	if class.hasValue() {
		n += 8
	}
	return n
}

// Valid checks the class and function of the opcode.
func (code Code) Valid() (err error) {
	class := code.Class()
	fn := code.Func()
	switch class {
	case I_HALT, I_NOP, I_IRMOVQ, I_RMMOVQ, I_MRMOVQ, I_CALL, I_RET, I_PUSHQ, I_POPQ:
		if fn != 0 {
			err = ErrOpcodeFunc
		}
	case I_RRMOVQ, I_JXX:
		if fn > int(C_G) {
			err = ErrOpcodeFunc
		}
	case I_ALU:
		if fn > int(A_XOR) {
			err = ErrOpcodeFunc
		}
	default:
		err = ErrOpcodeClass
	}
	return
}

// Bytes returns the little-endian encoding of the instruction.
func (code Code) Bytes() (out []byte) {
	class := code.Class()
	out = append(out, code.Op)
	if class.hasRegs() {
		out = append(out, code.Regs)
	}
	if class.hasValue() {
		out = binary.LittleEndian.AppendUint64(out, uint64(code.Value))
	}
	return
}

// Decode decodes the instruction at addr in mem.
//
// ErrAddress is returned if any byte of the instruction lies outside of
// mem, ErrInstruction if the opcode is not a valid instruction.
func Decode(mem *Memory, addr int64) (code Code, err error) {
	op, ok := mem.Byte(addr)
	if !ok {
		err = ErrAddress
		return
	}

	code.Op = op
	err = code.Valid()
	if err != nil {
		err = &decodeError{Op: op, Err: err}
		return
	}

	next := addr + 1
	class := code.Class()
	if class.hasRegs() {
		code.Regs, ok = mem.Byte(next)
		if !ok {
			err = ErrAddress
			return
		}
		next++
	}

	if class.hasValue() {
		code.Value, ok = mem.Long(next)
		if !ok {
			err = ErrAddress
			return
		}
	}

	return
}

// DecodeBytes decodes an instruction from the start of buf.
func DecodeBytes(buf []byte) (code Code, err error) {
	return Decode(&Memory{data: buf}, 0)
}

// decodeError is an invalid instruction error.
type decodeError struct {
	Op  byte
	Err error
}

func (err *decodeError) Error() string {
	return f("%v 0x%02x: %v", ErrInstruction, err.Op, err.Err)
}

func (err *decodeError) Unwrap() []error {
	return []error{ErrInstruction, err.Err}
}

// String returns the assembly language representation of this instruction.
func (code Code) String() (out string) {
	if code.Valid() != nil {
		return fmt.Sprintf(".byte 0x%02x", code.Op)
	}

	name := mnemonic(code.Op)

	switch code.Class() {
	case I_HALT, I_NOP, I_RET:
		out = name
	case I_RRMOVQ, I_ALU:
		out = fmt.Sprintf("%v %v, %v", name, code.RegA(), code.RegB())
	case I_IRMOVQ:
		out = fmt.Sprintf("%v $%d, %v", name, code.Value, code.RegB())
	case I_RMMOVQ:
		out = fmt.Sprintf("%v %v, %v", name, code.RegA(), memOperand(code.Value, code.RegB()))
	case I_MRMOVQ:
		out = fmt.Sprintf("%v %v, %v", name, memOperand(code.Value, code.RegB()), code.RegA())
	case I_JXX, I_CALL:
		out = fmt.Sprintf("%v 0x%x", name, code.Value)
	case I_PUSHQ, I_POPQ:
		out = fmt.Sprintf("%v %v", name, code.RegA())
	}

	return
}

// memOperand formats a D(rB) memory operand.
func memOperand(disp int64, reg Reg) string {
	if !reg.Valid() {
		return fmt.Sprintf("%d", disp)
	}
	if disp == 0 {
		return fmt.Sprintf("(%v)", reg)
	}
	return fmt.Sprintf("%d(%v)", disp, reg)
}
