package asm

import (
	"strconv"
	"strings"

	"github.com/ezrec/y64/cpu"
)

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// isNumber returns true if c can start a number.
func isNumber(c byte) bool {
	return isDigit(c) || c == '-' || c == '+'
}

func isBlank(c byte) bool {
	return c == ' ' || c == '\t'
}

// digitOf returns the value of a digit in any base up to 16, or 16.
func digitOf(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	}
	return 16
}

// scanner is a cursor into a line of assembly text.
//
// Each token method skips leading blanks, then either advances past the
// token and returns its value, or returns an error. The cursor position is
// unspecified after an error.
type scanner struct {
	text string
	pos  int
}

// peek returns the byte at the cursor, or 0 at the end of the line.
func (s *scanner) peek() byte {
	if s.pos >= len(s.text) {
		return 0
	}
	return s.text[s.pos]
}

func (s *scanner) skipBlank() {
	for s.pos < len(s.text) && isBlank(s.text[s.pos]) {
		s.pos++
	}
}

// end returns true if only blanks or a comment remain.
func (s *scanner) end() bool {
	s.skipBlank()
	return s.pos >= len(s.text) || s.text[s.pos] == '#'
}

// number scans a signed decimal, octal or hexadecimal literal at the cursor.
// Values wrap to 64 bits.
func (s *scanner) number() (value int64, err error) {
	start := s.pos
	neg := false
	switch s.peek() {
	case '-':
		neg = true
		s.pos++
	case '+':
		s.pos++
	}

	base := 10
	rest := s.text[s.pos:]
	switch {
	case len(rest) > 2 && (rest[:2] == "0x" || rest[:2] == "0X") && digitOf(rest[2]) < 16:
		base = 16
		s.pos += 2
	case len(rest) > 0 && rest[0] == '0':
		base = 8
	}

	digits := s.pos
	for s.pos < len(s.text) && digitOf(s.text[s.pos]) < base {
		s.pos++
	}
	if s.pos == digits {
		err = ErrSymbol{Name: s.text[start:], Err: ErrNumberInvalid}
		return
	}

	mag, err := strconv.ParseUint(s.text[digits:s.pos], base, 64)
	if err != nil {
		err = ErrSymbol{Name: s.text[start:s.pos], Err: ErrNumberInvalid}
		return
	}

	value = int64(mag)
	if neg {
		value = -value
	}

	return
}

// digit scans a number token.
func (s *scanner) digit() (value int64, err error) {
	s.skipBlank()
	if !isNumber(s.peek()) {
		err = ErrNumberInvalid
		return
	}
	return s.number()
}

// symbol scans a name: a letter followed by letters and digits.
func (s *scanner) symbol() (name string, err error) {
	s.skipBlank()
	if !isLetter(s.peek()) {
		err = ErrSymbolInvalid
		return
	}
	start := s.pos
	for s.pos < len(s.text) && (isLetter(s.text[s.pos]) || isDigit(s.text[s.pos])) {
		s.pos++
	}
	name = strings.Clone(s.text[start:s.pos])
	return
}

// reg scans a register name, choosing the longest match.
func (s *scanner) reg() (reg cpu.Reg, err error) {
	s.skipBlank()
	if s.peek() != '%' {
		err = ErrRegisterInvalid
		return
	}

	rest := s.text[s.pos:]
	reg = cpu.REG_NONE
	best := 0
	for id := cpu.REG_RAX; id < cpu.REG_NONE; id++ {
		name := id.String()
		if len(name) > best && strings.HasPrefix(rest, name) {
			reg = id
			best = len(name)
		}
	}
	if best == 0 {
		err = ErrRegisterInvalid
		return
	}

	s.pos += best
	return
}

// delim scans a single delimiter character.
func (s *scanner) delim(c byte) (err error) {
	s.skipBlank()
	if s.peek() != c {
		err = ErrDelimiterMissing
		return
	}
	s.pos++
	return
}

// mem scans a memory operand 'D(%reg)'. Both the displacement and the
// register are optional, but not both. The displacement defaults to zero,
// the register to REG_NONE.
func (s *scanner) mem() (disp int64, reg cpu.Reg, err error) {
	s.skipBlank()
	start := s.pos
	reg = cpu.REG_NONE

	if isNumber(s.peek()) {
		disp, err = s.number()
		if err != nil {
			return
		}
	}

	if s.peek() == '(' {
		s.pos++
		reg, err = s.reg()
		if err != nil {
			return
		}
		if s.peek() != ')' {
			err = ErrMemoryInvalid
			return
		}
		s.pos++
	}

	if s.pos == start {
		err = ErrMemoryInvalid
		return
	}

	return
}

// imm scans an immediate: '$' and a number, or a bare symbol name.
func (s *scanner) imm() (value int64, name string, err error) {
	s.skipBlank()
	switch c := s.peek(); {
	case c == '$':
		s.pos++
		if !isNumber(s.peek()) {
			err = ErrImmediateInvalid
			return
		}
		value, err = s.number()
	case isLetter(c):
		name, err = s.symbol()
	default:
		err = ErrImmediateInvalid
	}
	return
}

// data scans a data directive value: a number or a symbol name.
func (s *scanner) data() (value int64, name string, err error) {
	s.skipBlank()
	switch c := s.peek(); {
	case isNumber(c):
		value, err = s.number()
	case isLetter(c):
		name, err = s.symbol()
	default:
		err = ErrDataInvalid
	}
	return
}

// label scans a 'name:' label definition.
func (s *scanner) label() (name string, err error) {
	name, err = s.symbol()
	if err != nil {
		return
	}
	if s.peek() != ':' {
		err = ErrLabelInvalid
		return
	}
	s.pos++
	return
}

// instr scans an instruction or directive mnemonic.
func (s *scanner) instr() (in cpu.Instr, err error) {
	s.skipBlank()
	start := s.pos
	for s.pos < len(s.text) {
		c := s.text[s.pos]
		if !isLetter(c) && !isDigit(c) && c != '.' {
			break
		}
		s.pos++
	}

	word := s.text[start:s.pos]
	in, ok := cpu.FindInstr(word)
	if !ok {
		err = ErrSymbol{Name: word, Err: ErrInstructionInvalid}
		return
	}

	if c := s.peek(); c != 0 && !isBlank(c) && c != '#' {
		err = ErrSymbol{Name: s.text[start:], Err: ErrInstructionInvalid}
		return
	}

	return
}
