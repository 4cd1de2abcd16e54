package dataset

import "strconv"

// UnknownText is what an empty text cell reads as.
const UnknownText = "Unknown"

// Value is a single typed cell.
type Value struct {
	kind Kind
	text string
	num  int
}

// Text returns a text value.
func Text(s string) Value {
	return Value{kind: KindText, text: s}
}

// Int returns an integer value.
func Int(n int) Value {
	return Value{kind: KindInt, num: n}
}

// Missing returns the value of an empty numeric cell.
func Missing() Value {
	return Value{}
}

// Kind returns the value type.
func (v Value) Kind() Kind {
	return v.kind
}

// AsText returns the text payload and whether v holds text.
func (v Value) AsText() (string, bool) {
	return v.text, v.kind == KindText
}

// AsInt returns the integer payload and whether v holds an integer.
func (v Value) AsInt() (int, bool) {
	return v.num, v.kind == KindInt
}

// Equal reports exact, type-sensitive equality. A missing value equals nothing.
func (v Value) Equal(other Value) bool {
	if v.kind == KindMissing || v.kind != other.kind {
		return false
	}
	if v.kind == KindInt {
		return v.num == other.num
	}
	return v.text == other.text
}

func (v Value) String() string {
	switch v.kind {
	case KindText:
		return v.text
	case KindInt:
		return strconv.Itoa(v.num)
	default:
		return UnknownText
	}
}
