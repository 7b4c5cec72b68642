package types

import (
	"fmt"
	"strconv"
)

// Labeler is implemented by every field identifier.
type Labeler interface {
	// Label returns the canonical human-readable name, e.g. "Chemical Name".
	Label() string
}

// FieldName is the constraint satisfied by a record type's closed field
// enumeration: comparable, copyable, and labeled.
type FieldName interface {
	comparable
	Labeler
}

// Entry is the instance half of the record capability. Fields returns one
// Value per field in schema order; Field reads a single field.
type Entry[F FieldName] interface {
	Fields() []Value
	Field(name F) Value
}

// EntryType is the type-level half of the record capability. *Schema
// implements it for every record type.
type EntryType[F FieldName, R any] interface {
	FieldNames() []F
	FromFields(values []Value) (*R, error)
	Parse(label string) (F, error)
}

// RecordType is the type-erased view of a schema used by collaborators that
// select record types at runtime (storage tables, spreadsheets, the CLI).
type RecordType interface {
	// Name returns the table name of the record type.
	Name() string

	// Columns returns label and kind per field, in schema order.
	Columns() []ColumnInfo

	// Lookup returns the schema position of the field with the given label.
	// Returns a *FieldNotFoundError when no field matches.
	Lookup(label string) (int, error)

	// Decode constructs a record from ordered values and returns a pointer
	// to the concrete record struct.
	Decode(values []Value) (any, error)

	// Encode decomposes a record (pointer or value) into ordered values.
	// Returns ErrInvalidData if record is not of this type.
	Encode(record any) ([]Value, error)
}

// ColumnInfo describes one schema position.
type ColumnInfo struct {
	Label string
	Kind  Kind
}

// Column binds a field identifier to its kind and to the record field that
// stores its payload.
type Column[F FieldName, R any] struct {
	Field F
	Kind  Kind
	text  func(*R) *string
	flag  func(*R) *bool
}

// TextColumn declares a Text field stored in the string returned by ref.
func TextColumn[F FieldName, R any](field F, ref func(*R) *string) Column[F, R] {
	return Column[F, R]{Field: field, Kind: KindText, text: ref}
}

// FlagColumn declares a Flag field stored in the bool returned by ref.
func FlagColumn[F FieldName, R any](field F, ref func(*R) *bool) Column[F, R] {
	return Column[F, R]{Field: field, Kind: KindFlag, flag: ref}
}

func (c Column[F, R]) get(r *R) Value {
	switch c.Kind {
	case KindText:
		return Text(*c.text(r))
	case KindFlag:
		return Flag(*c.flag(r))
	default:
		return Value{}
	}
}

// set assumes v has already been checked against c.Kind.
func (c Column[F, R]) set(r *R, v Value) {
	switch c.Kind {
	case KindText:
		s, _ := v.AsText()
		*c.text(r) = s
	case KindFlag:
		b, _ := v.AsFlag()
		*c.flag(r) = b
	}
}

// Schema is the ordered list of (field, kind) pairs defining one record
// type's wire shape. A Schema is immutable after package initialization and
// safe for concurrent use.
type Schema[F FieldName, R any] struct {
	name    string
	columns []Column[F, R]
	index   map[F]int
	labels  map[string]int
}

// NewSchema builds a schema from columns in canonical order. It panics on a
// duplicate field, a duplicate label, or a column without an accessor, since
// schemas are declared at package level.
func NewSchema[F FieldName, R any](name string, columns ...Column[F, R]) *Schema[F, R] {
	s := &Schema[F, R]{
		name:    name,
		columns: columns,
		index:   make(map[F]int, len(columns)),
		labels:  make(map[string]int, len(columns)),
	}
	for i, c := range columns {
		if c.text == nil && c.flag == nil {
			panic(fmt.Sprintf("schema %s: column %s has no accessor", name, c.Field.Label()))
		}
		if _, dup := s.index[c.Field]; dup {
			panic(fmt.Sprintf("schema %s: duplicate field %s", name, c.Field.Label()))
		}
		if _, dup := s.labels[c.Field.Label()]; dup {
			panic(fmt.Sprintf("schema %s: duplicate label %q", name, c.Field.Label()))
		}
		s.index[c.Field] = i
		s.labels[c.Field.Label()] = i
	}
	return s
}

// WithAliases registers extra labels the parser accepts for existing fields.
// Label never returns an alias. Panics if an alias shadows a label or names a
// field outside the schema.
func (s *Schema[F, R]) WithAliases(aliases map[string]F) *Schema[F, R] {
	for alias, field := range aliases {
		pos, ok := s.index[field]
		if !ok {
			panic(fmt.Sprintf("schema %s: alias %q targets unknown field", s.name, alias))
		}
		if _, taken := s.labels[alias]; taken {
			panic(fmt.Sprintf("schema %s: alias %q shadows a label", s.name, alias))
		}
		s.labels[alias] = pos
	}
	return s
}

// Name returns the table name of the record type.
func (s *Schema[F, R]) Name() string { return s.name }

// Len returns the number of fields.
func (s *Schema[F, R]) Len() int { return len(s.columns) }

// FieldNames returns the field identifiers in schema order. The slice is a
// fresh copy on every call.
func (s *Schema[F, R]) FieldNames() []F {
	names := make([]F, len(s.columns))
	for i, c := range s.columns {
		names[i] = c.Field
	}
	return names
}

// Columns implements RecordType.
func (s *Schema[F, R]) Columns() []ColumnInfo {
	cols := make([]ColumnInfo, len(s.columns))
	for i, c := range s.columns {
		cols[i] = ColumnInfo{Label: c.Field.Label(), Kind: c.Kind}
	}
	return cols
}

// Validate checks values against the schema: first the length, then each
// position left to right. The first mismatching position is reported.
func (s *Schema[F, R]) Validate(values []Value) error {
	if len(values) != len(s.columns) {
		return &ArityMismatchError{Record: s.name, Want: len(s.columns), Got: len(values)}
	}
	for i, c := range s.columns {
		if values[i].Kind() != c.Kind {
			return &TypeMismatchError{
				Field:    c.Field,
				Position: i,
				Expected: c.Kind,
				Got:      values[i].Kind(),
			}
		}
	}
	return nil
}

// FromFields constructs a record from values in schema order.
func (s *Schema[F, R]) FromFields(values []Value) (*R, error) {
	if err := s.Validate(values); err != nil {
		return nil, err
	}
	r := new(R)
	for i, c := range s.columns {
		c.set(r, values[i])
	}
	return r, nil
}

// Fields decomposes r into one Value per field in schema order.
func (s *Schema[F, R]) Fields(r *R) []Value {
	values := make([]Value, len(s.columns))
	for i, c := range s.columns {
		values[i] = c.get(r)
	}
	return values
}

// Field reads a single field of r. Identifiers outside the enumeration
// yield the zero Value.
func (s *Schema[F, R]) Field(r *R, name F) Value {
	i, ok := s.index[name]
	if !ok {
		return Value{}
	}
	return s.columns[i].get(r)
}

// Parse returns the field whose label (or registered alias) equals label
// exactly.
func (s *Schema[F, R]) Parse(label string) (F, error) {
	i, err := s.Lookup(label)
	if err != nil {
		var zero F
		return zero, err
	}
	return s.columns[i].Field, nil
}

// Lookup implements RecordType.
func (s *Schema[F, R]) Lookup(label string) (int, error) {
	i, ok := s.labels[label]
	if !ok {
		return -1, &FieldNotFoundError{Record: s.name, Label: label}
	}
	return i, nil
}

// Decode implements RecordType and returns a *R.
func (s *Schema[F, R]) Decode(values []Value) (any, error) {
	r, err := s.FromFields(values)
	if err != nil {
		return nil, err
	}
	return r, nil
}

// Encode implements RecordType. It accepts *R or R.
func (s *Schema[F, R]) Encode(record any) ([]Value, error) {
	switch r := record.(type) {
	case *R:
		if r == nil {
			return nil, ErrInvalidData
		}
		return s.Fields(r), nil
	case R:
		return s.Fields(&r), nil
	default:
		return nil, fmt.Errorf("%w: %s cannot encode %T", ErrInvalidData, s.name, record)
	}
}

// enumLabel returns labels[i], or a stringer-style placeholder for values
// outside the enumeration.
func enumLabel(labels []string, typeName string, i int) string {
	if i < 0 || i >= len(labels) {
		return typeName + "(" + strconv.Itoa(i) + ")"
	}
	return labels[i]
}
