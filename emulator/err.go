package emulator

import (
	"errors"

	"github.com/ezrec/y64/translate"
)

var f = translate.From

var (
	ErrStepLimit    = errors.New(f("step limit reached"))
	ErrExpectFailed = errors.New(f("expectation failed"))
	ErrMemorySize   = errors.New(f("invalid memory size"))
)

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	Pc     int64
	LineNo int
	Err    error
}

func (err *ErrRuntime) Error() string {
	if err.LineNo == 0 {
		return f("pc 0x%x %v", uint64(err.Pc), err.Err)
	}
	return f("pc 0x%x line %d %v", uint64(err.Pc), err.LineNo, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}

// ErrExpect attributes an expectation failure to its message.
type ErrExpect string

func (err ErrExpect) Error() string {
	return f("%v: %v", ErrExpectFailed, string(err))
}

func (err ErrExpect) Unwrap() error {
	return ErrExpectFailed
}
