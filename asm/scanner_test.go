package asm

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/y64/cpu"
)

func TestScannerDigit(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		text  string
		value int64
		rest  string
	}){
		{"10", 10, ""},
		{"  -10,", -10, ","},
		{"+7)", 7, ")"},
		{"0x1F(", 0x1f, "("},
		{"0XfF", 0xff, ""},
		{"010", 8, ""},
		{"0", 0, ""},
		{"09", 0, "9"},
		{"0x", 0, "x"},
		{"0xffffffffffffffff", -1, ""},
		{"-0x8000000000000000", -0x8000000000000000, ""},
	}

	for _, entry := range table {
		s := &scanner{text: entry.text}
		value, err := s.digit()
		assert.NoError(err, entry.text)
		assert.Equal(entry.value, value, entry.text)
		assert.Equal(entry.rest, s.text[s.pos:], entry.text)
	}

	for _, text := range []string{"", "x10", "-", "+x", "0x10000000000000000", "$10"} {
		s := &scanner{text: text}
		_, err := s.digit()
		assert.ErrorIs(err, ErrNumberInvalid, text)
	}
}

func TestScannerReg(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		text string
		reg  cpu.Reg
		rest string
	}){
		{"%rax", cpu.REG_RAX, ""},
		{" %rsp,", cpu.REG_RSP, ","},
		{"%r8)", cpu.REG_R8, ")"},
		{"%r9", cpu.REG_R9, ""},
		{"%r10", cpu.REG_R10, ""},
		{"%r14 ", cpu.REG_R14, " "},
		{"%r1x", cpu.REG_NONE, ""},
	}

	for _, entry := range table {
		s := &scanner{text: entry.text}
		reg, err := s.reg()
		if entry.reg == cpu.REG_NONE {
			assert.ErrorIs(err, ErrRegisterInvalid, entry.text)
			continue
		}
		assert.NoError(err, entry.text)
		assert.Equal(entry.reg, reg, entry.text)
		assert.Equal(entry.rest, s.text[s.pos:], entry.text)
	}

	for _, text := range []string{"", "rax", "%", "%xyz", "$1"} {
		s := &scanner{text: text}
		_, err := s.reg()
		assert.ErrorIs(err, ErrRegisterInvalid, text)
	}
}

func TestScannerSymbol(t *testing.T) {
	assert := assert.New(t)

	s := &scanner{text: "  Loop2: next"}
	name, err := s.symbol()
	assert.NoError(err)
	assert.Equal("Loop2", name)
	assert.Equal(": next", s.text[s.pos:])

	for _, text := range []string{"", "2loop", "_x", "$x"} {
		s := &scanner{text: text}
		_, err := s.symbol()
		assert.ErrorIs(err, ErrSymbolInvalid, text)
	}
}

func TestScannerMem(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		text string
		disp int64
		reg  cpu.Reg
	}){
		{"8(%rbp)", 8, cpu.REG_RBP},
		{" (%rsp)", 0, cpu.REG_RSP},
		{"-16(%r12)", -16, cpu.REG_R12},
		{"0x100", 0x100, cpu.REG_NONE},
	}

	for _, entry := range table {
		s := &scanner{text: entry.text}
		disp, reg, err := s.mem()
		assert.NoError(err, entry.text)
		assert.Equal(entry.disp, disp, entry.text)
		assert.Equal(entry.reg, reg, entry.text)
		assert.True(s.end(), entry.text)
	}

	for _, text := range []string{"", "%rax", "(%rax", "8(rax)", "(", "x(%rax)"} {
		s := &scanner{text: text}
		_, _, err := s.mem()
		assert.Error(err, text)
	}
}

func TestScannerImm(t *testing.T) {
	assert := assert.New(t)

	s := &scanner{text: " $-5, %rax"}
	value, name, err := s.imm()
	assert.NoError(err)
	assert.Equal(int64(-5), value)
	assert.Equal("", name)

	s = &scanner{text: "stack, %rsp"}
	value, name, err = s.imm()
	assert.NoError(err)
	assert.Equal(int64(0), value)
	assert.Equal("stack", name)

	for _, text := range []string{"", "10", "$", "$x", "%rax"} {
		s := &scanner{text: text}
		_, _, err := s.imm()
		assert.Error(err, text)
	}
}

func TestScannerData(t *testing.T) {
	assert := assert.New(t)

	s := &scanner{text: "0x10"}
	value, name, err := s.data()
	assert.NoError(err)
	assert.Equal(int64(0x10), value)
	assert.Equal("", name)

	s = &scanner{text: "array"}
	_, name, err = s.data()
	assert.NoError(err)
	assert.Equal("array", name)

	s = &scanner{text: "$10"}
	_, _, err = s.data()
	assert.ErrorIs(err, ErrDataInvalid)
}

func TestScannerLabelInstr(t *testing.T) {
	assert := assert.New(t)

	s := &scanner{text: "return: ret # done"}
	name, err := s.label()
	assert.NoError(err)
	assert.Equal("return", name)

	in, err := s.instr()
	assert.NoError(err)
	assert.Equal("ret", in.Name)
	assert.True(s.end())

	s = &scanner{text: "halt"}
	_, err = s.label()
	assert.ErrorIs(err, ErrLabelInvalid)

	for _, text := range []string{"hal", "halts", "halt,", "movq", ".bytes"} {
		s := &scanner{text: text}
		_, err := s.instr()
		assert.ErrorIs(err, ErrInstructionInvalid, text)
	}

	s = &scanner{text: "\t.quad 5"}
	in, err = s.instr()
	assert.NoError(err)
	assert.Equal(8, in.Bytes)
}
