package filter

import (
	"encoding/json"
	"strconv"

	pstrings "gsa/internal/platform/strings"
)

// Kind tags which side of a Value is set
type Kind uint8

const (
	// KindString is a raw textual value, kept exactly as written (quotes included)
	KindString Kind = iota
	// KindNumber is an integer produced by keyword coercion
	KindNumber
)

// Value is the right hand side of a term: either a string or an integer
// The zero Value is the empty string
type Value struct {
	kind Kind
	num  int
	str  string
}

// Str builds a string value
func Str(s string) Value { return Value{kind: KindString, str: s} }

// Int builds a numeric value
func Int(n int) Value { return Value{kind: KindNumber, num: n} }

// Kind reports which variant is set
func (v Value) Kind() Kind { return v.kind }

// IsNumber reports whether v is numeric
func (v Value) IsNumber() bool { return v.kind == KindNumber }

// Int returns the numeric value; ok is false for string values
func (v Value) Int() (int, bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	return v.num, true
}

// Text returns the string variant; ok is false for numbers
func (v Value) Text() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.str, true
}

// String renders the value as it appears on the wire, without added quoting
func (v Value) String() string {
	if v.kind == KindNumber {
		return strconv.Itoa(v.num)
	}
	return v.str
}

// IsEmpty reports whether v is the empty string
func (v Value) IsEmpty() bool { return v.kind == KindString && v.str == "" }

// is reports whether v is exactly the string s
func (v Value) is(s string) bool { return v.kind == KindString && v.str == s }

// intOr coerces v to an integer using leading digit semantics, def when there are none
func (v Value) intOr(def int) int {
	if v.kind == KindNumber {
		return v.num
	}
	return pstrings.IntOr(v.str, def)
}

// MarshalJSON emits numbers as JSON numbers and strings as JSON strings
func (v Value) MarshalJSON() ([]byte, error) {
	if v.kind == KindNumber {
		return json.Marshal(v.num)
	}
	return json.Marshal(v.str)
}

// UnmarshalJSON accepts either a JSON number or a JSON string
func (v *Value) UnmarshalJSON(b []byte) error {
	var n int
	if err := json.Unmarshal(b, &n); err == nil {
		*v = Int(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	*v = Str(s)
	return nil
}
