// Package cpu implements the Y64 instruction set and its execution engine.
//
// The machine has fifteen 64-bit registers (%rax-%r14), a program counter,
// three condition codes (zero, sign, overflow) and a byte addressed memory.
// Instructions are one to ten bytes long: an opcode byte whose high nibble is
// the instruction class and low nibble the function, an optional register
// byte (rA:rB), and an optional 8-byte little-endian value.
//
// Both the register file and main memory are Memory blocks; every access is
// bounds checked and a failing access leaves the machine state unmodified.
package cpu
