package cpu

import (
	"errors"

	"github.com/ezrec/y64/translate"
)

var f = translate.From

var (
	// Execution results.
	ErrHalt        = errors.New(f("halt"))
	ErrAddress     = errors.New(f("invalid address"))
	ErrInstruction = errors.New(f("invalid instruction"))

	// Instruction decode errors
	ErrOpcodeClass = errors.New(f("class"))
	ErrOpcodeFunc  = errors.New(f("function"))
	ErrOpcodeFetch = errors.New(f("fetch"))
	ErrOpcodeData  = errors.New(f("data"))
	ErrOpcodeStack = errors.New(f("stack"))

	// Memory errors
	ErrMemoryOverflow = errors.New(f("image exceeds memory"))
)

// ErrOpcode reports the instruction that failed to execute.
type ErrOpcode Code

func (eo ErrOpcode) Error() string {
	return f("bad opcode 0x%02x %v", eo.Op, Code(eo).String())
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}

// ErrBadAddress reports the address of a failed data or stack access.
type ErrBadAddress int64

func (ea ErrBadAddress) Error() string {
	return f("address 0x%x out of range", uint64(ea))
}

func (ea ErrBadAddress) Unwrap() error {
	return ErrAddress
}
