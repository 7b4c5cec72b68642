package types

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Kind identifies which variant a Value carries.
type Kind int

// Scalar kinds. The zero Kind is invalid and never matches a schema column.
const (
	KindText Kind = iota + 1
	KindFlag
)

// String returns the kind name used in error messages.
func (k Kind) String() string {
	switch k {
	case KindText:
		return "Text"
	case KindFlag:
		return "Flag"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Value is the wire representation of a single record field. It holds
// either a Text or a Flag payload, never both. Values are immutable and
// compare structurally with ==.
type Value struct {
	kind Kind
	text string
	flag bool
}

// Text returns a Text value.
func Text(s string) Value {
	return Value{kind: KindText, text: s}
}

// Flag returns a Flag value.
func Flag(b bool) Value {
	return Value{kind: KindFlag, flag: b}
}

// Kind reports the variant. The zero Value reports an invalid kind.
func (v Value) Kind() Kind {
	return v.kind
}

// AsText returns the Text payload. ok is false for any other kind.
func (v Value) AsText() (s string, ok bool) {
	if v.kind != KindText {
		return "", false
	}
	return v.text, true
}

// AsFlag returns the Flag payload. ok is false for any other kind.
func (v Value) AsFlag() (b bool, ok bool) {
	if v.kind != KindFlag {
		return false, false
	}
	return v.flag, true
}

// IsZero reports whether v carries no variant.
func (v Value) IsZero() bool {
	return v.kind == 0
}

// String renders the value as Text("...") or Flag(true|false).
func (v Value) String() string {
	switch v.kind {
	case KindText:
		return fmt.Sprintf("Text(%q)", v.text)
	case KindFlag:
		return fmt.Sprintf("Flag(%t)", v.flag)
	default:
		return "Value()"
	}
}

// MarshalJSON encodes Text as a JSON string and Flag as a JSON boolean.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindText:
		return json.Marshal(v.text)
	case KindFlag:
		return json.Marshal(v.flag)
	default:
		return nil, fmt.Errorf("marshal value: %w", ErrInvalidData)
	}
}

// UnmarshalJSON accepts a JSON string (Text) or boolean (Flag). Any other
// JSON type is rejected with ErrInvalidData.
func (v *Value) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ValueOf(raw)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// ValueOf wraps a Go string or bool in a Value. Values pass through unchanged.
// Returns ErrInvalidData for any other type.
func ValueOf(x any) (Value, error) {
	switch t := x.(type) {
	case Value:
		return t, nil
	case string:
		return Text(t), nil
	case bool:
		return Flag(t), nil
	default:
		return Value{}, fmt.Errorf("%w: unsupported scalar %T", ErrInvalidData, x)
	}
}

// Interface returns the payload as a Go string or bool, or nil for the zero Value.
func (v Value) Interface() any {
	switch v.kind {
	case KindText:
		return v.text
	case KindFlag:
		return v.flag
	default:
		return nil
	}
}
