package asm

import (
	"encoding/binary"
	"iter"

	"github.com/ezrec/y64/cpu"
)

// Symbol is a label bound to an address.
type Symbol struct {
	Name string
	Addr int64
}

// SymbolTable holds uniquely named symbols in definition order.
type SymbolTable struct {
	entries []Symbol
	index   map[string]int
}

// Add binds name to addr. A name that is already bound is not replaced.
func (st *SymbolTable) Add(name string, addr int64) (err error) {
	if _, ok := st.index[name]; ok {
		err = ErrSymbol{Name: name, Err: ErrLabelDuplicate}
		return
	}

	if st.index == nil {
		st.index = make(map[string]int, 16)
	}
	st.index[name] = len(st.entries)
	st.entries = append(st.entries, Symbol{Name: name, Addr: addr})

	return
}

// Find looks up a symbol by name.
func (st *SymbolTable) Find(name string) (sym Symbol, ok bool) {
	n, ok := st.index[name]
	if ok {
		sym = st.entries[n]
	}
	return
}

// Len returns the number of symbols.
func (st *SymbolTable) Len() int {
	return len(st.entries)
}

// All yields every symbol name and address in definition order.
func (st *SymbolTable) All() iter.Seq2[string, int64] {
	return func(yield func(name string, addr int64) bool) {
		for _, sym := range st.entries {
			if !yield(sym.Name, sym.Addr) {
				return
			}
		}
	}
}

// Reset empties the table.
func (st *SymbolTable) Reset() {
	st.entries = st.entries[:0]
	clear(st.index)
}

// Reloc is a reference to a symbol from an emitted line.
type Reloc struct {
	Name string // Referenced symbol.
	Line int    // Index of the owning line.
}

// RelocTable holds the pending relocations.
type RelocTable struct {
	entries []Reloc
}

// Add records a relocation.
func (rt *RelocTable) Add(name string, line int) {
	rt.entries = append(rt.entries, Reloc{Name: name, Line: line})
}

// Len returns the number of relocations.
func (rt *RelocTable) Len() int {
	return len(rt.entries)
}

// Reset empties the table.
func (rt *RelocTable) Reset() {
	rt.entries = rt.entries[:0]
}

// relocField returns the offset and width of the patched field of an
// emitted line, by the class of its instruction.
func relocField(op byte, size int) (offset int, width int) {
	switch cpu.CodeClass(op >> 4) {
	case cpu.I_IRMOVQ:
		return 2, 8
	case cpu.I_JXX, cpu.I_CALL:
		return 1, 8
	default:
		// Data directives; the address is truncated to the directive width.
		return 0, size
	}
}

// Resolve patches every relocation with its symbol's address.
func (rt *RelocTable) Resolve(symbols *SymbolTable, lines []Line) (err error) {
	for _, rel := range rt.entries {
		line := &lines[rel.Line]

		sym, ok := symbols.Find(rel.Name)
		if !ok {
			err = ErrSyntax{LineNo: line.LineNo, Line: line.Text, Err: ErrLabelMissing(rel.Name)}
			return
		}

		offset, width := relocField(line.Op, len(line.Codes))
		var field [8]byte
		binary.LittleEndian.PutUint64(field[:], uint64(sym.Addr))
		copy(line.Codes[offset:offset+width], field[:width])
	}

	return
}
