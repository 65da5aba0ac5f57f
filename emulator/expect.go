package emulator

import (
	"errors"
	"log"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/y64/cpu"
)

// predeclared returns the final machine state as Starlark globals.
//
//	status  'AOK', 'HLT', 'ADR' or 'INS'
//	pc      program counter
//	cc      {'Z': bool, 'S': bool, 'O': bool}
//	steps   steps executed
//	reg     register values by name, without the '%'
//	sym     program symbol addresses by name
//	mem(a)  the 8 byte word at address a
//	fail(m) stop the script with a failure message
func (emu *Emulator) predeclared() (pred starlark.StringDict) {
	cc := starlark.NewDict(3)
	cc.SetKey(starlark.String("Z"), starlark.Bool(emu.Cpu.CC.Zero()))
	cc.SetKey(starlark.String("S"), starlark.Bool(emu.Cpu.CC.Sign()))
	cc.SetKey(starlark.String("O"), starlark.Bool(emu.Cpu.CC.Overflow()))

	reg := starlark.NewDict(int(cpu.REG_NONE))
	for id := cpu.REG_RAX; id < cpu.REG_NONE; id++ {
		reg.SetKey(starlark.String(strings.TrimPrefix(id.String(), "%")), starlark.MakeInt64(emu.Cpu.Reg(id)))
	}

	sym := starlark.NewDict(0)
	if emu.Program != nil {
		for _, symbol := range emu.Program.Symbols {
			sym.SetKey(starlark.String(symbol.Name), starlark.MakeInt64(symbol.Addr))
		}
	}

	pred = starlark.StringDict{
		"status": starlark.String(emu.Status.String()),
		"pc":     starlark.MakeInt64(emu.Cpu.Pc),
		"cc":     cc,
		"steps":  starlark.MakeInt(emu.Steps()),
		"reg":    reg,
		"sym":    sym,
		"mem":    starlark.NewBuiltin("mem", emu.starlarkMem),
		"fail":   starlark.NewBuiltin("fail", starlarkFail),
	}
	pred.Freeze()

	return
}

func (emu *Emulator) starlarkMem(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (value starlark.Value, err error) {
	var addr int
	err = starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 1, &addr)
	if err != nil {
		return
	}

	long, ok := emu.Cpu.Memory.Long(int64(addr))
	if !ok {
		err = cpu.ErrBadAddress(addr)
		return
	}

	value = starlark.MakeInt64(long)
	return
}

func starlarkFail(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (value starlark.Value, err error) {
	var msg []string
	for _, arg := range args {
		if str, ok := arg.(starlark.String); ok {
			msg = append(msg, string(str))
		} else {
			msg = append(msg, arg.String())
		}
	}

	err = ErrExpect(strings.Join(msg, " "))
	return
}

// Expect runs a Starlark script against the final machine state.
//
// The script fails if it raises an error, calls fail(), or leaves the
// global 'ok' set to a false value. src is as for starlark.ExecFile.
func (emu *Emulator) Expect(name string, src any) (err error) {
	thread := &starlark.Thread{
		Name: name,
		Print: func(thread *starlark.Thread, msg string) {
			log.Printf("%v: %v", thread.Name, msg)
		},
	}
	opts := syntax.FileOptions{
		TopLevelControl: true,
		GlobalReassign:  true,
	}

	globals, err := starlark.ExecFileOptions(&opts, thread, name, src, emu.predeclared())
	if err != nil {
		var expect ErrExpect
		if errors.As(err, &expect) {
			err = expect
			return
		}
		err = errors.Join(ErrExpectFailed, err)
		return
	}

	if ok, found := globals["ok"]; found && !bool(ok.Truth()) {
		err = ErrExpect(f("%v: ok = %v", name, ok))
		return
	}

	if emu.Verbose {
		log.Printf("%v: passed", name)
	}

	return
}
