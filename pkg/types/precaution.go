package types

// Precaution is a precautionary statement.
type Precaution struct {
	Statement string
}

// PrecautionField identifies a field of Precaution.
type PrecautionField int

const (
	PrecautionStatement PrecautionField = iota
)

var precautionLabels = []string{"Statement"}

// Label implements Labeler.
func (f PrecautionField) Label() string { return enumLabel(precautionLabels, "PrecautionField", int(f)) }

func (f PrecautionField) String() string { return f.Label() }

// PrecautionSchema maps Precaution to and from scalar values.
var PrecautionSchema = NewSchema(PrecautionsTable,
	TextColumn(PrecautionStatement, func(p *Precaution) *string { return &p.Statement }),
)

var (
	_ Entry[PrecautionField]                 = (*Precaution)(nil)
	_ EntryType[PrecautionField, Precaution] = PrecautionSchema
)

// PrecautionFromFields constructs a Precaution from values in schema order.
func PrecautionFromFields(values []Value) (*Precaution, error) {
	return PrecautionSchema.FromFields(values)
}

// PrecautionFieldNames returns the Precaution fields in schema order.
func PrecautionFieldNames() []PrecautionField { return PrecautionSchema.FieldNames() }

// ParsePrecautionField returns the field whose label is label.
func ParsePrecautionField(label string) (PrecautionField, error) {
	return PrecautionSchema.Parse(label)
}

// Fields implements Entry.
func (p *Precaution) Fields() []Value { return PrecautionSchema.Fields(p) }

// Field implements Entry.
func (p *Precaution) Field(name PrecautionField) Value { return PrecautionSchema.Field(p, name) }
