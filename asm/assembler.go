// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package asm implements the two pass assembler for the Y64 instruction set.
//
// Pass one parses each source line in order, assigning addresses, binding
// labels in the symbol table and recording a relocation for every symbolic
// operand. Pass two patches each relocation with its symbol's address. The
// resulting Program can be emitted as a binary memory image or as a listing.
package asm

import (
	"bufio"
	"io"
	"log"
	"slices"
	"strings"
)

// Assembler is a two pass assembler for the Y64 system.
type Assembler struct {
	Verbose bool   // If set, verbosely logs the assembler actions.
	Lines   []Line // List of parsed source lines.

	Symbol SymbolTable // Labels bound to addresses.
	Reloc  RelocTable  // Symbolic references awaiting pass two.
}

// Parse parses an input stream into a Program.
//
// Assembly stops at the first line in error; the returned error is an
// ErrSyntax naming that line.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			if _, ok := err.(ErrSyntax); !ok {
				err = ErrSyntax{LineNo: lineno, Line: line, Err: err}
			}
		}
	}()

	asm.Lines = asm.Lines[:0]
	asm.Symbol.Reset()
	asm.Reloc.Reset()

	// Pass one.
	var addr int64
	for scanner.Scan() {
		line = strings.TrimRight(scanner.Text(), "\r")
		lineno += 1

		asm.Lines = append(asm.Lines, Line{LineNo: lineno, Text: line})
		addr, err = asm.parseLine(len(asm.Lines)-1, addr)
		if err != nil {
			return
		}

		if asm.Verbose {
			parsed := &asm.Lines[len(asm.Lines)-1]
			log.Printf("%v: %v 0x%03x % x\n", lineno, parsed.Type, parsed.Addr, parsed.Codes)
		}
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	// Pass two.
	err = asm.Reloc.Resolve(&asm.Symbol, asm.Lines)
	if err != nil {
		return
	}

	prog = &Program{
		Lines:   slices.Clone(asm.Lines),
		Symbols: slices.Clone(asm.Symbol.entries),
	}

	return
}
