package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func FuzzCode(f *testing.F) {
	for _, in := range InstrSet {
		f.Add(in.Code, uint8(0x12), int64(-1))
		f.Add(in.Code, uint8(0xf0), int64(0x100))
	}
	f.Add(uint8(0xff), uint8(0), int64(0))

	f.Fuzz(func(t *testing.T, op uint8, regs uint8, value int64) {
		assert := assert.New(t)

		code := Code{Op: op}
		if code.Class().hasRegs() {
			code.Regs = regs
		}
		if code.Class().hasValue() {
			code.Value = value
		}

		bytes := code.Bytes()
		decoded, err := DecodeBytes(bytes)
		if code.Valid() != nil {
			assert.ErrorIs(err, ErrInstruction)
			return
		}

		assert.NoError(err)
		assert.Equal(code, decoded)
		assert.Equal(code.Class(), decoded.Class())
		assert.Equal(code.Func(), decoded.Func())
		assert.Equal(len(bytes), decoded.Len())

		// Execution never panics, and never advances past a fault.
		cpu := NewCpu(64)
		cpu.Memory.Load(bytes)
		cpu.SetReg(REG_RSP, 32)
		pc := cpu.Pc
		status := cpu.Step()
		if status != STAT_AOK {
			assert.Equal(pc, cpu.Pc)
		}
	})
}
