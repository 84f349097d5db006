package lox

import (
	"strconv"
	"strings"
)

// ValueKind is the discriminant of Value, covering the five runtime value
// shapes a Lox program can produce: nil, bool, number, string, callable.
type ValueKind int

const (
	KindNil ValueKind = iota
	KindBool
	KindNumber
	KindString
	KindCallable
)

// Value is the universal runtime value carrier. Nil is the zero Value.
type Value struct {
	Kind Ki
	Data interface{} // bool | float64 | string | Callable, per Kind
}

// Ki is an alias of ValueKind used as Value.Kind's field type. The zero
// Value{} has Kind KindNil because KindNil is the zero ValueKind.
type Ki = ValueKind

// NilValue is the singleton nil Value.
var NilValue = Value{Kind: KindNil}

func BoolValue(b bool) Value         { return Value{Kind: KindBool, Data: b} }
func NumberValue(n float64) Value    { return Value{Kind: KindNumber, Data: n} }
func StringValue(s string) Value     { return Value{Kind: KindString, Data: s} }
func CallableValue(c Callable) Value { return Value{Kind: KindCallable, Data: c} }

func (v Value) IsNil() bool       { return v.Kind == KindNil }
func (v Value) AsBool() bool      { return v.Data.(bool) }
func (v Value) AsNumber() float64 { return v.Data.(float64) }
func (v Value) AsString() string  { return v.Data.(string) }
func (v Value) AsCallable() Callable {
	c, _ := v.Data.(Callable)
	return c
}

// IsTruthy implements Lox's truthiness rule: nil and false are falsey,
// everything else (including 0 and "") is truthy.
func (v Value) IsTruthy() bool {
	switch v.Kind {
	case KindNil:
		return false
	case KindBool:
		return v.AsBool()
	default:
		return true
	}
}

// Equals implements Lox's equality rule: nil==nil is true, nil==anything
// else is false, otherwise plain value equality with no coercion across
// kinds (NaN follows IEEE-754, i.e. NaN != NaN).
func (v Value) Equals(other Value) bool {
	if v.Kind == KindNil && other.Kind == KindNil {
		return true
	}
	if v.Kind == KindNil || other.Kind == KindNil {
		return false
	}
	if v.Kind != other.Kind {
		return false
	}
	switch v.Kind {
	case KindBool:
		return v.AsBool() == other.AsBool()
	case KindNumber:
		return v.AsNumber() == other.AsNumber()
	case KindString:
		return v.AsString() == other.AsString()
	case KindCallable:
		return v.AsCallable() == other.AsCallable()
	}
	return false
}

// Stringify renders v the way `print` does. Numbers use the
// platform's shortest round-trip representation, with a trailing ".0"
// stripped to match Lox's integer-looking-double convention.
func Stringify(v Value) string {
	switch v.Kind {
	case KindNil:
		return "nil"
	case KindBool:
		if v.AsBool() {
			return "true"
		}
		return "false"
	case KindString:
		return v.AsString()
	case KindNumber:
		text := strconv.FormatFloat(v.AsNumber(), 'g', -1, 64)
		if strings.HasSuffix(text, ".0") {
			text = text[:len(text)-2]
		}
		return text
	case KindCallable:
		return v.AsCallable().String()
	}
	return "nil"
}
