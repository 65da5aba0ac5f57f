package asm

import (
	"errors"

	"github.com/ezrec/y64/translate"
)

var f = translate.From

var (
	// Token errors
	ErrRegisterInvalid  = errors.New(f("invalid register"))
	ErrDelimiterMissing = errors.New(f("missing delimiter"))
	ErrNumberInvalid    = errors.New(f("invalid number"))
	ErrSymbolInvalid    = errors.New(f("invalid symbol"))
	ErrMemoryInvalid    = errors.New(f("invalid memory operand"))
	ErrImmediateInvalid = errors.New(f("invalid immediate"))
	ErrDataInvalid      = errors.New(f("invalid data"))
	ErrLabelInvalid     = errors.New(f("not a label"))

	// Line errors
	ErrInstructionInvalid = errors.New(f("invalid instruction"))
	ErrTargetInvalid      = errors.New(f("invalid destination"))
	ErrPositionInvalid    = errors.New(f("invalid .pos"))
	ErrAlignInvalid       = errors.New(f("invalid .align"))
	ErrOpcodeExtraArgs    = errors.New(f("excessive arguments"))
	ErrLabelDuplicate     = errors.New(f("label duplicated"))
	ErrAddressOverflow    = errors.New(f("address overflow"))

	// Emission errors
	ErrImageOverlap  = errors.New(f("overlapping code"))
	ErrImageTooLarge = errors.New(f("image too large"))
)

// ErrLabelMissing is an unresolved relocation.
type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v missing", string(el))
}

// ErrSymbol attributes an error to a symbol name.
type ErrSymbol struct {
	Name string
	Err  error
}

func (err ErrSymbol) Error() string {
	return f("'%v' %v", err.Name, err.Err)
}

func (err ErrSymbol) Unwrap() error {
	return err.Err
}

// ErrSyntax attributes an error to a source line.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}
