package cpu

import (
	"maps"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemoryBounds(t *testing.T) {
	assert := assert.New(t)

	m := NewMemory(16)
	assert.Equal(16, m.Len())

	assert.True(m.SetByte(15, 0xaa))
	assert.False(m.SetByte(16, 0xbb))
	assert.False(m.SetByte(-1, 0xbb))

	v, ok := m.Byte(15)
	assert.True(ok)
	assert.Equal(byte(0xaa), v)

	_, ok = m.Byte(16)
	assert.False(ok)

	assert.True(m.SetLong(8, -2))
	assert.False(m.SetLong(9, 1))
	assert.False(m.SetLong(-8, 1))

	l, ok := m.Long(8)
	assert.True(ok)
	assert.Equal(int64(-2), l)

	_, ok = m.Long(9)
	assert.False(ok)

	// A failed write leaves the memory unmodified.
	l, _ = m.Long(8)
	assert.Equal(int64(-2), l)
}

func TestMemoryLittleEndian(t *testing.T) {
	assert := assert.New(t)

	m := NewMemory(8)
	assert.True(m.SetLong(0, 0x0102030405060708))

	out, ok := m.Bytes(0, 8)
	assert.True(ok)
	assert.Equal([]byte{8, 7, 6, 5, 4, 3, 2, 1}, out)
}

func TestMemoryLoad(t *testing.T) {
	assert := assert.New(t)

	m := NewMemory(4)
	assert.NoError(m.Load([]byte{1, 2, 3}))
	out, _ := m.Bytes(0, 4)
	assert.Equal([]byte{1, 2, 3, 0}, out)

	assert.ErrorIs(m.Load([]byte{1, 2, 3, 4, 5}), ErrMemoryOverflow)
}

func TestMemoryDiff(t *testing.T) {
	assert := assert.New(t)

	before := NewMemory(32)
	before.SetLong(8, 5)
	after := before.Clone()

	assert.Equal(0, len(maps.Collect(before.Diff(after))))

	after.SetLong(8, 6)
	after.SetByte(24, 1)

	diff := maps.Collect(before.Diff(after))
	assert.Equal(map[int64]Change{
		8:  {Old: 5, New: 6},
		24: {Old: 0, New: 1},
	}, diff)

	// Clone is independent of its source.
	v, _ := before.Long(8)
	assert.Equal(int64(5), v)
}
