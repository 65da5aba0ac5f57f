package asm

import (
	"fmt"
	"io"
	"strings"
)

// IMAGE_LIMIT is the size of the largest binary image Binary will emit.
const IMAGE_LIMIT = 1 << 24

// LineType classifies a source line.
type LineType int

//go:generate go tool stringer -linecomment -type=LineType
const (
	LINE_COMMENT = LineType(0) // comment
	LINE_INSTR   = LineType(1) // instr
	LINE_ERROR   = LineType(2) // error
)

// Line is the assembled record of a single source line.
type Line struct {
	LineNo int      // Source line number, starting at 1.
	Text   string   // Source text.
	Type   LineType // Classification.
	Addr   int64    // Address of the first emitted byte.
	Op     byte     // Opcode of the instruction or directive.
	Codes  []byte   // Emitted bytes.
	Reloc  bool     // Codes hold a symbol address patched in pass two.
}

// Program is the output of the assembler.
type Program struct {
	Lines   []Line
	Symbols []Symbol
}

// Binary returns the memory image of the program: each line's bytes at
// its address, with any gap between lines filled with zeros. Images that
// would extend past IMAGE_LIMIT are rejected.
func (prog *Program) Binary() (bin []byte, err error) {
	var end int64

	for _, line := range prog.Lines {
		if len(line.Codes) == 0 {
			continue
		}
		if line.Addr < end {
			err = ErrSyntax{LineNo: line.LineNo, Line: line.Text, Err: ErrImageOverlap}
			return
		}
		if line.Addr > IMAGE_LIMIT-int64(len(line.Codes)) {
			err = ErrSyntax{LineNo: line.LineNo, Line: line.Text, Err: ErrImageTooLarge}
			return
		}
		bin = append(bin, make([]byte, line.Addr-end)...)
		bin = append(bin, line.Codes...)
		end = line.Addr + int64(len(line.Codes))
	}

	return
}

// Line returns the line that emitted the byte at addr.
func (prog *Program) Line(addr int64) (line *Line, ok bool) {
	for n := range prog.Lines {
		l := &prog.Lines[n]
		if addr >= l.Addr && addr < l.Addr+int64(len(l.Codes)) {
			return l, true
		}
	}

	return
}

// Symbol looks up a symbol address by name.
func (prog *Program) Symbol(name string) (addr int64, ok bool) {
	for _, sym := range prog.Symbols {
		if sym.Name == name {
			return sym.Addr, true
		}
	}
	return
}

// listingPrefix formats the address and byte columns of a listing line.
func listingPrefix(line *Line) string {
	if line.Type != LINE_INSTR {
		return strings.Repeat(" ", 30) + "| "
	}

	var hex strings.Builder
	for _, b := range line.Codes {
		fmt.Fprintf(&hex, "%02x", b)
	}

	return fmt.Sprintf("  0x%03x: %-20s | ", line.Addr&0xfff, hex.String())
}

// Listing writes the human readable listing of the program: each source
// line preceded by its address and emitted bytes.
func (prog *Program) Listing(w io.Writer) (err error) {
	for n := range prog.Lines {
		line := &prog.Lines[n]
		_, err = fmt.Fprintf(w, "%s%s\n", listingPrefix(line), line.Text)
		if err != nil {
			return
		}
	}

	return
}
