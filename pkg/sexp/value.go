package sexp

// Kind discriminates the scalar payload carried by a Value.
type Kind uint8

const (
	// KindString renders the payload quoted and escaped.
	KindString Kind = iota
	// KindFloat renders the payload through FormatFloat.
	KindFloat
	// KindBool renders "true" or "false".
	KindBool
	// KindToken renders the payload verbatim, without quotes. Used for
	// enumeration values, UUIDs and timestamps, which are known not to
	// contain characters requiring quoting.
	KindToken
)

// Value is a single named scalar node, rendered as "(name payload)".
// All leaf attributes of library elements are Values; composites hold
// their Values directly and render them inline.
type Value struct {
	name string
	kind Kind
	str  string
	num  float64
	b    bool
}

// String returns a Value of kind KindString.
func String(name, v string) Value {
	return Value{name: name, kind: KindString, str: v}
}

// Float returns a Value of kind KindFloat.
func Float(name string, v float64) Value {
	return Value{name: name, kind: KindFloat, num: v}
}

// Bool returns a Value of kind KindBool.
func Bool(name string, v bool) Value {
	return Value{name: name, kind: KindBool, b: v}
}

// Token returns a Value of kind KindToken.
func Token(name, v string) Value {
	return Value{name: name, kind: KindToken, str: v}
}

// Kind reports the payload kind.
func (v Value) Kind() Kind { return v.kind }

// Name reports the node name.
func (v Value) Name() string { return v.name }

func (v Value) String() string {
	switch v.kind {
	case KindFloat:
		return "(" + v.name + " " + FormatFloat(v.num) + ")"
	case KindBool:
		if v.b {
			return "(" + v.name + " true)"
		}
		return "(" + v.name + " false)"
	case KindToken:
		return "(" + v.name + " " + v.str + ")"
	default:
		return "(" + v.name + " " + Quote(v.str) + ")"
	}
}
