package main

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/y64/emulator"
)

func TestSimLimits(t *testing.T) {
	assert := assert.New(t)

	steps, err := simLimits(emulator.MEM_SIZE, []string{"prog.bin"})
	assert.NoError(err)
	assert.Equal(emulator.MAX_STEPS, steps)

	steps, err = simLimits(0, []string{"prog.bin", "25"})
	assert.NoError(err)
	assert.Equal(25, steps)

	_, err = simLimits(-1, []string{"prog.bin"})
	assert.ErrorIs(err, emulator.ErrMemorySize)

	_, err = simLimits(emulator.MEM_SIZE, []string{"prog.bin", "many"})
	assert.ErrorIs(err, strconv.ErrSyntax)
}
