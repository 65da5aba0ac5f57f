package cpu

import (
	"encoding/binary"
	"iter"
)

// Word size of a register or memory long.
const WORD_SIZE = 8

// Memory is a fixed capacity, bounds checked byte buffer.
type Memory struct {
	data []byte
}

// NewMemory creates a zeroed memory of size bytes.
func NewMemory(size int) (m *Memory) {
	m = &Memory{
		data: make([]byte, size),
	}
	return
}

// Len returns the capacity in bytes.
func (m *Memory) Len() int {
	return len(m.data)
}

// Valid returns true if [addr, addr+n) lies inside of the memory.
func (m *Memory) Valid(addr int64, n int) bool {
	return addr >= 0 && addr+int64(n) <= int64(len(m.data)) && addr+int64(n) >= addr
}

// Byte reads the byte at addr.
func (m *Memory) Byte(addr int64) (value byte, ok bool) {
	if !m.Valid(addr, 1) {
		return
	}
	return m.data[addr], true
}

// SetByte writes the byte at addr.
func (m *Memory) SetByte(addr int64, value byte) (ok bool) {
	if !m.Valid(addr, 1) {
		return
	}
	m.data[addr] = value
	return true
}

// Long reads the little-endian 8-byte value at addr.
func (m *Memory) Long(addr int64) (value int64, ok bool) {
	if !m.Valid(addr, WORD_SIZE) {
		return
	}
	return int64(binary.LittleEndian.Uint64(m.data[addr:])), true
}

// SetLong writes the little-endian 8-byte value at addr.
func (m *Memory) SetLong(addr int64, value int64) (ok bool) {
	if !m.Valid(addr, WORD_SIZE) {
		return
	}
	binary.LittleEndian.PutUint64(m.data[addr:], uint64(value))
	return true
}

// Load copies an image into the low bytes of memory.
func (m *Memory) Load(image []byte) (err error) {
	if len(image) > len(m.data) {
		err = ErrMemoryOverflow
		return
	}
	copy(m.data, image)
	return
}

// Bytes returns a copy of [addr, addr+n).
func (m *Memory) Bytes(addr int64, n int) (out []byte, ok bool) {
	if !m.Valid(addr, n) {
		return
	}
	out = append(out, m.data[addr:addr+int64(n)]...)
	return out, true
}

// Reset zeros the memory.
func (m *Memory) Reset() {
	clear(m.data)
}

// Clone returns an independent copy of the memory.
func (m *Memory) Clone() *Memory {
	return &Memory{data: append([]byte(nil), m.data...)}
}

// Change is an old and new value of a memory word.
type Change struct {
	Old int64
	New int64
}

// Diff yields every 8-byte word, by offset, whose value differs between
// m and after. Only the common length of both memories is compared.
func (m *Memory) Diff(after *Memory) iter.Seq2[int64, Change] {
	return func(yield func(addr int64, change Change) bool) {
		size := min(m.Len(), after.Len())
		for pos := int64(0); pos+WORD_SIZE <= int64(size); pos += WORD_SIZE {
			old, _ := m.Long(pos)
			now, _ := after.Long(pos)
			if old == now {
				continue
			}
			if !yield(pos, Change{Old: old, New: now}) {
				return
			}
		}
	}
}
