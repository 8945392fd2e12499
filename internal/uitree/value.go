package uitree

import "strconv"

// Kind identifies which variant a Value holds.
type Kind int

const (
	KindNull Kind = iota
	KindInt
	KindFloat
	KindString
	KindBool
	KindObject
	KindList
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindObject:
		return "object"
	case KindList:
		return "list"
	default:
		return "unknown"
	}
}

// Value is one property value as reported by the game client. The client
// attaches no schema to its properties, so every reader goes through one of
// the As* coercions and handles the "wrong shape" case explicitly.
type Value struct {
	kind  Kind
	i     int64
	f     float64
	s     string
	b     bool
	obj   map[string]Value
	items []Value
}

func Null() Value { return Value{kind: KindNull} }
func Int(i int64) Value { return Value{kind: KindInt, i: i} }
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }
func String(s string) Value { return Value{kind: KindString, s: s} }
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }
func Object(fields map[string]Value) Value { return Value{kind: KindObject, obj: fields} }
func List(items []Value) Value { return Value{kind: KindList, items: items} }

// Kind reports the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// AsInt accepts an integer, an integral float, or a string holding an
// integer. Objects are never coerced; see RegionFromProps for int_low32.
func (v Value) AsInt() (int, bool) {
	switch v.kind {
	case KindInt:
		return int(v.i), true
	case KindFloat:
		if v.f == float64(int64(v.f)) {
			return int(v.f), true
		}
	case KindString:
		n, err := strconv.Atoi(v.s)
		if err == nil {
			return n, true
		}
	}
	return 0, false
}

// AsFloat accepts integers and floats.
func (v Value) AsFloat() (float64, bool) {
	switch v.kind {
	case KindInt:
		return float64(v.i), true
	case KindFloat:
		return v.f, true
	}
	return 0, false
}

func (v Value) AsString() (string, bool) {
	if v.kind == KindString {
		return v.s, true
	}
	return "", false
}

func (v Value) AsBool() (bool, bool) {
	if v.kind == KindBool {
		return v.b, true
	}
	return false, false
}

// Field returns a member of an object value.
func (v Value) Field(name string) (Value, bool) {
	if v.kind != KindObject {
		return Value{}, false
	}
	f, ok := v.obj[name]
	return f, ok
}

// Items returns the elements of a list value, or nil for any other kind.
func (v Value) Items() []Value {
	if v.kind != KindList {
		return nil
	}
	return v.items
}
