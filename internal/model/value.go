package model

import (
	"strconv"
	"strings"
)

// Kind classifies a cell value.
type Kind uint8

const (
	KindNull Kind = iota
	KindText
	KindNumber
	KindBool
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	default:
		return "null"
	}
}

// Value is a single table cell. An absent cell and a null cell are the same
// Value; Raw keeps the text the cell was read from so output stays verbatim.
type Value struct {
	Kind Kind
	Raw  string
}

// Null returns the null value.
func Null() Value { return Value{} }

// Text returns a text value.
func Text(s string) Value { return Value{Kind: KindText, Raw: s} }

// Number returns a numeric value carrying its source text.
func Number(raw string) Value { return Value{Kind: KindNumber, Raw: raw} }

// Bool returns a boolean value carrying its source text.
func Bool(raw string) Value { return Value{Kind: KindBool, Raw: raw} }

// IsNull reports whether v is null.
func (v Value) IsNull() bool { return v.Kind == KindNull }

// IsText reports whether v holds text.
func (v Value) IsText() bool { return v.Kind == KindText }

// String renders v the way it is written to output. Null renders empty.
func (v Value) String() string {
	if v.IsNull() {
		return ""
	}
	return v.Raw
}

// Equal reports whether two values are the same kind and compare equal.
// Numbers compare by parsed value so "1" and "1.0" are equal.
func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case KindNull:
		return true
	case KindNumber:
		a, errA := strconv.ParseFloat(v.Raw, 64)
		b, errB := strconv.ParseFloat(o.Raw, 64)
		if errA == nil && errB == nil {
			return a == b
		}
	case KindBool:
		return strings.EqualFold(v.Raw, o.Raw)
	}
	return v.Raw == o.Raw
}

// GroupKey returns a string that is identical for values that are Equal.
func (v Value) GroupKey() string {
	switch v.Kind {
	case KindNull:
		return "\x00null"
	case KindNumber:
		if f, err := strconv.ParseFloat(v.Raw, 64); err == nil {
			return "n:" + strconv.FormatFloat(f, 'g', -1, 64)
		}
		return "n:" + v.Raw
	case KindBool:
		return "b:" + strings.ToLower(v.Raw)
	default:
		return "t:" + v.Raw
	}
}
