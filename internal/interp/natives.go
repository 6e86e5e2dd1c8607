package interp

import "time"

// defineNatives installs the two globals available to every program before
// any user code runs: clock() and input(prompt). Both are ordinary Native
// Callables registered in it.globals; the "input" statement form reuses the
// same "input" binding rather than duplicating its host call.
func (it *Interpreter) defineNatives() {
	it.globals.Define("clock", &Native{
		Name:   "",
		ArityN: 0,
		Fn: func(_ *Interpreter, _ []Value) (Value, error) {
			return Number{Val: time.Since(it.startTime).Seconds(), IsFloat: true}, nil
		},
	})

	it.globals.Define("input", &Native{
		Name:   "input",
		ArityN: 1,
		Fn: func(it *Interpreter, args []Value) (Value, error) {
			prompt := stringify(args[0])
			line, err := it.hostInput(prompt)
			if err != nil {
				return nil, err
			}
			return Str(line), nil
		},
	})
}
