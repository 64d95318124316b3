package listview

import (
	"strconv"
	"strings"
	"time"
)

// Kind identifies the scalar type held by a Value.
type Kind int

const (
	// KindNull marks an absent value. Nulls sort after every other value.
	KindNull Kind = iota
	// KindString holds display text.
	KindString
	// KindNumber holds a numeric value.
	KindNumber
	// KindBool holds a boolean flag.
	KindBool
	// KindTime holds a parsed timestamp.
	KindTime
)

// Value is one cell of a displayed record: a string, number, boolean, or
// timestamp, any of which may be null. Backend rows expose their fields as
// Values so the controller can sort and search without knowing row shapes.
type Value struct {
	kind    Kind
	str     string
	num     float64
	boolean bool
	ts      time.Time
}

// Null returns the null value.
func Null() Value {
	return Value{kind: KindNull}
}

// String returns a string value.
func String(value string) Value {
	return Value{kind: KindString, str: value}
}

// StringPtr returns a string value, or null when the pointer is nil.
func StringPtr(value *string) Value {
	if value == nil {
		return Null()
	}
	return String(*value)
}

// Number returns a numeric value.
func Number(value float64) Value {
	return Value{kind: KindNumber, num: value}
}

// Int returns a numeric value from an integer.
func Int(value int) Value {
	return Number(float64(value))
}

// IntPtr returns a numeric value, or null when the pointer is nil.
func IntPtr(value *int) Value {
	if value == nil {
		return Null()
	}
	return Int(*value)
}

// Bool returns a boolean value.
func Bool(value bool) Value {
	return Value{kind: KindBool, boolean: value}
}

// Time returns a timestamp value.
func Time(value time.Time) Value {
	return Value{kind: KindTime, ts: value}
}

// Timestamp parses an ISO-8601 timestamp string. An empty string is null;
// a string that fails to parse degrades to a plain string value so the
// cell still renders and sorts lexicographically.
func Timestamp(value string) Value {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return Null()
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02"} {
		if ts, err := time.Parse(layout, trimmed); err == nil {
			return Time(ts)
		}
	}
	return String(trimmed)
}

// TimestampPtr parses a nullable ISO-8601 timestamp string.
func TimestampPtr(value *string) Value {
	if value == nil {
		return Null()
	}
	return Timestamp(*value)
}

// Kind returns the scalar type held by the value.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNull reports whether the value is null.
func (v Value) IsNull() bool {
	return v.kind == KindNull
}

// Display formats the value for table rendering. Nulls render empty.
func (v Value) Display() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindBool:
		if v.boolean {
			return "yes"
		}
		return "no"
	case KindTime:
		return v.ts.UTC().Format("2006-01-02 15:04")
	default:
		return ""
	}
}

// SearchText returns the case-foldable text used for free-text search.
func (v Value) SearchText() string {
	return v.Display()
}
