package lox

import "time"

// RegisterGlobals seeds env with the interpreter's built-ins. clock()
// returns fractional wall-clock seconds, so tests can only assert its
// type and monotonicity, never an exact value.
func RegisterGlobals(env *Environment) {
	clock := NewNative("clock", 0, func(in *Interpreter, args []Value) (Value, error) {
		return NumberValue(float64(time.Now().UnixNano()) / 1e9), nil
	})
	_ = env.Define("clock", CallableValue(clock))
}
