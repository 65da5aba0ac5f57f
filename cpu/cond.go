package cpu

import (
	"fmt"
)

// CodeCond is a condition predicate, the function of I_RRMOVQ and I_JXX.
type CodeCond int

//go:generate go tool stringer -linecomment -type=CodeCond
const (
	C_YES = CodeCond(0) // yes
	C_LE  = CodeCond(1) // le
	C_L   = CodeCond(2) // l
	C_E   = CodeCond(3) // e
	C_NE  = CodeCond(4) // ne
	C_GE  = CodeCond(5) // ge
	C_G   = CodeCond(6) // g
)

// CC holds the condition codes packed as Z<<2 | S<<1 | O.
type CC uint8

const (
	CC_OF = CC(1 << 0) // Overflow.
	CC_SF = CC(1 << 1) // Sign.
	CC_ZF = CC(1 << 2) // Zero.

	DEFAULT_CC = CC_ZF
)

// PackCC packs the three flags.
func PackCC(zero, sign, overflow bool) (cc CC) {
	if zero {
		cc |= CC_ZF
	}
	if sign {
		cc |= CC_SF
	}
	if overflow {
		cc |= CC_OF
	}
	return
}

func (cc CC) Zero() bool     { return cc&CC_ZF != 0 }
func (cc CC) Sign() bool     { return cc&CC_SF != 0 }
func (cc CC) Overflow() bool { return cc&CC_OF != 0 }

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}

// String formats the flags as "Z=1 S=0 O=0".
func (cc CC) String() string {
	return fmt.Sprintf("Z=%d S=%d O=%d", b2i(cc.Zero()), b2i(cc.Sign()), b2i(cc.Overflow()))
}

// Test evaluates the predicate against the condition codes.
func (cond CodeCond) Test(cc CC) (doit bool) {
	zf := cc.Zero()
	lt := cc.Sign() != cc.Overflow()

	switch cond {
	case C_YES:
		doit = true
	case C_LE:
		doit = lt || zf
	case C_L:
		doit = lt
	case C_E:
		doit = zf
	case C_NE:
		doit = !zf
	case C_GE:
		doit = !lt
	case C_G:
		doit = !lt && !zf
	}

	return
}

// doAlu performs the ALU operation valB = valB op valA, and returns the
// result with its condition codes.
func doAlu(op CodeAluOp, valA, valB int64) (val int64, cc CC) {
	var ovf bool

	switch op {
	case A_ADD:
		val = valB + valA
		ovf = (valA < 0) == (valB < 0) && (val < 0) != (valB < 0)
	case A_SUB:
		val = valB - valA
		ovf = (valA < 0) != (valB < 0) && (val < 0) != (valB < 0)
	case A_AND:
		val = valB & valA
	case A_XOR:
		val = valB ^ valA
	}

	cc = PackCC(val == 0, val < 0, ovf)
	return
}
