// Package value provides the small typed value carried by tree items.
//
// A Value is a closed tagged union of integer, floating point and string.
// The representation is designed to make equality checks fast and predictable:
// no reflection and no fmt-based comparison.
package value

import (
	"strconv"
	"strings"

	gojson "github.com/goccy/go-json"
)

// Kind identifies the concrete type stored in a Value.
type Kind uint8

const (
	// KindNone represents the absence of a value. It is never produced by
	// ingestion; queries use it to report that an item holds no value for
	// a batch.
	KindNone Kind = iota
	// KindInt represents an integer value.
	KindInt
	// KindString represents a string value.
	KindString
	// KindFloat represents a floating point value.
	KindFloat
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindInt:
		return "int"
	case KindString:
		return "string"
	case KindFloat:
		return "double"
	default:
		return "invalid"
	}
}

// KindFromType maps a document type attribute to a Kind.
// Recognized names are "int", "string" and "double".
func KindFromType(s string) (Kind, bool) {
	switch s {
	case "int":
		return KindInt, true
	case "string":
		return KindString, true
	case "double":
		return KindFloat, true
	default:
		return KindNone, false
	}
}

// Value is a small typed value attached to tree items.
type Value struct {
	Kind Kind
	I64  int64
	F64  float64
	S    string
}

// None returns the sentinel "no value" instance.
func None() Value {
	return Value{Kind: KindNone}
}

// Int returns an integer Value.
func Int(i int64) Value {
	return Value{Kind: KindInt, I64: i}
}

// Float returns a floating point Value.
func Float(f float64) Value {
	return Value{Kind: KindFloat, F64: f}
}

// String returns a string Value.
func String(s string) Value {
	return Value{Kind: KindString, S: s}
}

// Parse builds a Value of the given kind from the literal text of a
// document entry. Numeric parsing tolerates trailing garbage: the longest
// leading prefix that parses is used, and zero is produced when no prefix
// parses at all.
func Parse(kind Kind, text string) Value {
	switch kind {
	case KindInt:
		return Int(leadingInt(text))
	case KindFloat:
		return Float(leadingFloat(text))
	case KindString:
		return String(text)
	default:
		return None()
	}
}

// Equal reports whether two values hold the same kind and payload.
// String equality compares length and bytes, not identity.
func (v Value) Equal(other Value) bool {
	if v.Kind != other.Kind {
		return false
	}
	switch v.Kind {
	case KindInt:
		return v.I64 == other.I64
	case KindFloat:
		return v.F64 == other.F64
	case KindString:
		return v.S == other.S
	default:
		return false
	}
}

// Clone returns an independent copy of the value. Callers own the copy;
// mutating it never affects the tree's stored values.
func (v Value) Clone() Value {
	return v
}

// IsNone reports whether the value is the "no value" sentinel.
func (v Value) IsNone() bool {
	return v.Kind == KindNone
}

// String renders the payload for logs and dumps.
func (v Value) String() string {
	switch v.Kind {
	case KindInt:
		return strconv.FormatInt(v.I64, 10) + "(int)"
	case KindFloat:
		return strconv.FormatFloat(v.F64, 'f', -1, 64) + "(double)"
	case KindString:
		return v.S + "(string)"
	default:
		return "(none)"
	}
}

type jsonValue struct {
	Kind string   `json:"kind"`
	I64  *int64   `json:"int,omitempty"`
	F64  *float64 `json:"double,omitempty"`
	S    *string  `json:"string,omitempty"`
}

// MarshalJSON implements json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) {
	jv := jsonValue{Kind: v.Kind.String()}
	switch v.Kind {
	case KindInt:
		jv.I64 = &v.I64
	case KindFloat:
		jv.F64 = &v.F64
	case KindString:
		jv.S = &v.S
	}
	return gojson.Marshal(jv)
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *Value) UnmarshalJSON(data []byte) error {
	var jv jsonValue
	if err := gojson.Unmarshal(data, &jv); err != nil {
		return err
	}
	switch jv.Kind {
	case "int":
		*v = Int(0)
		if jv.I64 != nil {
			v.I64 = *jv.I64
		}
	case "double":
		*v = Float(0)
		if jv.F64 != nil {
			v.F64 = *jv.F64
		}
	case "string":
		*v = String("")
		if jv.S != nil {
			v.S = *jv.S
		}
	default:
		*v = None()
	}
	return nil
}

// leadingInt parses the longest base-10 integer prefix of s, returning 0
// when none exists. Matches strtol-style tolerance for trailing garbage.
func leadingInt(s string) int64 {
	s = strings.TrimLeft(s, " \t\r\n")
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	n, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// leadingFloat parses the longest floating point prefix of s, returning 0
// when none exists.
func leadingFloat(s string) float64 {
	s = strings.TrimLeft(s, " \t\r\n")
	for end := len(s); end > 0; end-- {
		if f, err := strconv.ParseFloat(s[:end], 64); err == nil {
			return f
		}
	}
	return 0
}
