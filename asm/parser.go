package asm

import (
	"encoding/binary"

	"github.com/ezrec/y64/cpu"
)

// parseLine parses the line at index n, whose first byte is emitted at
// addr. It returns the address following the line.
func (asm *Assembler) parseLine(n int, addr int64) (next int64, err error) {
	line := &asm.Lines[n]
	s := &scanner{text: line.Text}

	next = addr
	line.Type = LINE_COMMENT
	defer func() {
		if err != nil {
			line.Type = LINE_ERROR
		}
	}()

	// Labels, any number, each bound to the current address.
	for {
		if s.end() {
			return
		}
		mark := s.pos
		label, lerr := s.label()
		if lerr != nil {
			s.pos = mark
			break
		}
		err = asm.Symbol.Add(label, next)
		if err != nil {
			return
		}
		line.Type = LINE_INSTR
		line.Addr = next
	}

	in, err := s.instr()
	if err != nil {
		return
	}

	line.Type = LINE_INSTR
	line.Addr = next
	line.Op = in.Code

	var code cpu.Code

	switch in.Class() {
	case cpu.I_HALT, cpu.I_NOP, cpu.I_RET:
		code = cpu.MakeCode(in.Code)
	case cpu.I_PUSHQ, cpu.I_POPQ:
		var ra cpu.Reg
		ra, err = s.reg()
		if err != nil {
			return
		}
		code = cpu.MakeCodeRegs(in.Code, ra, cpu.REG_NONE)
	case cpu.I_RRMOVQ, cpu.I_ALU:
		var ra, rb cpu.Reg
		ra, err = s.reg()
		if err != nil {
			return
		}
		err = s.delim(',')
		if err != nil {
			return
		}
		rb, err = s.reg()
		if err != nil {
			return
		}
		code = cpu.MakeCodeRegs(in.Code, ra, rb)
	case cpu.I_IRMOVQ:
		var value int64
		var name string
		var rb cpu.Reg
		value, name, err = s.imm()
		if err != nil {
			return
		}
		err = s.delim(',')
		if err != nil {
			return
		}
		rb, err = s.reg()
		if err != nil {
			return
		}
		if len(name) != 0 {
			asm.Reloc.Add(name, n)
			line.Reloc = true
		}
		code = cpu.MakeCodeValue(in.Code, cpu.REG_NONE, rb, value)
	case cpu.I_RMMOVQ:
		var ra, rb cpu.Reg
		var disp int64
		ra, err = s.reg()
		if err != nil {
			return
		}
		err = s.delim(',')
		if err != nil {
			return
		}
		disp, rb, err = s.mem()
		if err != nil {
			return
		}
		code = cpu.MakeCodeValue(in.Code, ra, rb, disp)
	case cpu.I_MRMOVQ:
		var ra, rb cpu.Reg
		var disp int64
		disp, rb, err = s.mem()
		if err != nil {
			return
		}
		err = s.delim(',')
		if err != nil {
			return
		}
		ra, err = s.reg()
		if err != nil {
			return
		}
		code = cpu.MakeCodeValue(in.Code, ra, rb, disp)
	case cpu.I_JXX, cpu.I_CALL:
		var name string
		name, err = s.symbol()
		if err != nil {
			err = ErrTargetInvalid
			return
		}
		asm.Reloc.Add(name, n)
		line.Reloc = true
		code = cpu.MakeCodeDest(in.Code, 0)
	case cpu.I_DIRECTIVE:
		next, err = asm.parseDirective(n, s, in, addr)
		if err == nil && !s.end() {
			err = ErrOpcodeExtraArgs
		}
		return
	default:
		err = ErrInstructionInvalid
		return
	}

	if !s.end() {
		err = ErrOpcodeExtraArgs
		return
	}

	line.Codes = code.Bytes()
	next = addr + int64(len(line.Codes))
	if next < addr {
		err = ErrAddressOverflow
		return
	}

	return
}

// parseDirective parses the operand of a directive.
func (asm *Assembler) parseDirective(n int, s *scanner, in cpu.Instr, addr int64) (next int64, err error) {
	line := &asm.Lines[n]
	next = addr

	switch in.Func() {
	case cpu.D_DATA:
		var value int64
		var name string
		value, name, err = s.data()
		if err != nil {
			return
		}
		if len(name) != 0 {
			asm.Reloc.Add(name, n)
			line.Reloc = true
		}
		var field [8]byte
		binary.LittleEndian.PutUint64(field[:], uint64(value))
		line.Codes = append([]byte(nil), field[:in.Bytes]...)
		next = addr + int64(in.Bytes)
		if next < addr {
			err = ErrAddressOverflow
			return
		}
	case cpu.D_POS:
		var pos int64
		pos, err = s.digit()
		if err != nil {
			return
		}
		if pos < 0 {
			err = ErrPositionInvalid
			return
		}
		next = pos
		line.Addr = pos
	case cpu.D_ALIGN:
		var align int64
		align, err = s.digit()
		if err != nil {
			return
		}
		if align <= 0 {
			err = ErrAlignInvalid
			return
		}
		if rem := addr % align; rem != 0 {
			next = addr + align - rem
			if next < addr {
				err = ErrAddressOverflow
				return
			}
		}
		line.Addr = next
	default:
		err = ErrInstructionInvalid
	}

	return
}
