package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInstrSet(t *testing.T) {
	assert := assert.New(t)

	for _, in := range InstrSet {
		found, ok := FindInstr(in.Name)
		assert.True(ok, in.Name)
		assert.Equal(in, found)
		if in.Class() == I_DIRECTIVE {
			continue
		}
		assert.Equal(in.Bytes, Code{Op: in.Code}.Len(), in.Name)
		assert.NoError(Code{Op: in.Code}.Valid(), in.Name)
	}

	_, ok := FindInstr("movq")
	assert.False(ok)
	_, ok = FindInstr("hal")
	assert.False(ok)
}

func TestCodeBytes(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name  string
		code  Code
		bytes []byte
	}){
		{"halt", MakeCode(Pack(I_HALT, 0)), []byte{0x00}},
		{"ret", MakeCode(Pack(I_RET, 0)), []byte{0x90}},
		{"rrmovq", MakeCodeRegs(Pack(I_RRMOVQ, int(C_YES)), REG_RSP, REG_RBP), []byte{0x20, 0x45}},
		{"addq", MakeCodeRegs(Pack(I_ALU, int(A_ADD)), REG_RAX, REG_RAX), []byte{0x60, 0x00}},
		{"pushq", MakeCodeRegs(Pack(I_PUSHQ, 0), REG_RBP, REG_NONE), []byte{0xa0, 0x5f}},
		{"irmovq", MakeCodeValue(Pack(I_IRMOVQ, 0), REG_NONE, REG_RAX, 10),
			[]byte{0x30, 0xf0, 10, 0, 0, 0, 0, 0, 0, 0}},
		{"rmmovq", MakeCodeValue(Pack(I_RMMOVQ, 0), REG_RCX, REG_RBX, -8),
			[]byte{0x40, 0x13, 0xf8, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}},
		{"jne", MakeCodeDest(Pack(I_JXX, int(C_NE)), 0x1234),
			[]byte{0x74, 0x34, 0x12, 0, 0, 0, 0, 0, 0}},
		{"call", MakeCodeDest(Pack(I_CALL, 0), 0x100),
			[]byte{0x80, 0x00, 0x01, 0, 0, 0, 0, 0, 0}},
	}

	for _, entry := range table {
		bytes := entry.code.Bytes()
		assert.Equal(entry.bytes, bytes, entry.name)
		assert.Equal(len(entry.bytes), entry.code.Len(), entry.name)

		code, err := DecodeBytes(bytes)
		assert.NoError(err, entry.name)
		assert.Equal(entry.code, code, entry.name)
	}
}

func TestCodeString(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		code Code
		text string
	}){
		{MakeCode(Pack(I_NOP, 0)), "nop"},
		{MakeCodeRegs(Pack(I_RRMOVQ, int(C_LE)), REG_RAX, REG_RBX), "cmovle %rax, %rbx"},
		{MakeCodeRegs(Pack(I_ALU, int(A_XOR)), REG_R8, REG_R14), "xorq %r8, %r14"},
		{MakeCodeValue(Pack(I_IRMOVQ, 0), REG_NONE, REG_RSP, 256), "irmovq $256, %rsp"},
		{MakeCodeValue(Pack(I_RMMOVQ, 0), REG_RAX, REG_RBP, 8), "rmmovq %rax, 8(%rbp)"},
		{MakeCodeValue(Pack(I_MRMOVQ, 0), REG_RSI, REG_RDI, 0), "mrmovq (%rdi), %rsi"},
		{MakeCodeValue(Pack(I_MRMOVQ, 0), REG_RSI, REG_NONE, 64), "mrmovq 64, %rsi"},
		{MakeCodeDest(Pack(I_JXX, int(C_YES)), 0x20), "jmp 0x20"},
		{MakeCodeRegs(Pack(I_POPQ, 0), REG_R10, REG_NONE), "popq %r10"},
		{Code{Op: 0xff}, ".byte 0xff"},
	}

	for _, entry := range table {
		assert.Equal(entry.text, entry.code.String())
	}
}

func TestDecodeErrors(t *testing.T) {
	assert := assert.New(t)

	_, err := DecodeBytes(nil)
	assert.ErrorIs(err, ErrAddress)

	_, err = DecodeBytes([]byte{0xc0})
	assert.ErrorIs(err, ErrInstruction)
	assert.ErrorIs(err, ErrOpcodeClass)

	_, err = DecodeBytes([]byte{0x64, 0x00})
	assert.ErrorIs(err, ErrInstruction)
	assert.ErrorIs(err, ErrOpcodeFunc)

	_, err = DecodeBytes([]byte{0x01})
	assert.ErrorIs(err, ErrOpcodeFunc)

	// Truncated operands are address faults.
	_, err = DecodeBytes([]byte{0x30, 0xf0, 1, 2})
	assert.ErrorIs(err, ErrAddress)

	_, err = DecodeBytes([]byte{0x20})
	assert.ErrorIs(err, ErrAddress)
}

func TestCondTest(t *testing.T) {
	assert := assert.New(t)

	// Expected outcome per CC value 0..7 (Z<<2 | S<<1 | O).
	table := map[CodeCond][8]bool{
		C_YES: {true, true, true, true, true, true, true, true},
		C_LE:  {false, true, true, false, true, true, true, true},
		C_L:   {false, true, true, false, false, true, true, false},
		C_E:   {false, false, false, false, true, true, true, true},
		C_NE:  {true, true, true, true, false, false, false, false},
		C_GE:  {true, false, false, true, true, false, false, true},
		C_G:   {true, false, false, true, false, false, false, false},
	}

	for cond, expect := range table {
		for cc := range CC(8) {
			assert.Equal(expect[cc], cond.Test(cc), "%v %v", cond, cc)
		}
	}
}

func TestCCString(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("Z=1 S=0 O=0", DEFAULT_CC.String())
	assert.Equal("Z=0 S=1 O=1", PackCC(false, true, true).String())
	assert.Equal(CC(5), PackCC(true, false, true))
}
