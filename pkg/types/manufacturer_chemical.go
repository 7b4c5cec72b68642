package types

// ManufacturerChemical links a chemical to a manufacturer by the
// manufacturer's own product number.
type ManufacturerChemical struct {
	ManufacturerNumber string
}

// ManufacturerChemicalField identifies a field of ManufacturerChemical.
type ManufacturerChemicalField int

const (
	// ManufacturerChemicalNumber is the Manufacturer Number field.
	ManufacturerChemicalNumber ManufacturerChemicalField = iota
)

var manufacturerChemicalLabels = []string{"Manufacturer Number"}

// Label implements Labeler.
func (f ManufacturerChemicalField) Label() string {
	return enumLabel(manufacturerChemicalLabels, "ManufacturerChemicalField", int(f))
}

func (f ManufacturerChemicalField) String() string { return f.Label() }

// ManufacturerChemicalSchema maps ManufacturerChemical to and from scalar values.
var ManufacturerChemicalSchema = NewSchema(ManufacturerChemicalsTable,
	TextColumn(ManufacturerChemicalNumber, func(m *ManufacturerChemical) *string { return &m.ManufacturerNumber }),
)

var (
	_ Entry[ManufacturerChemicalField]                           = (*ManufacturerChemical)(nil)
	_ EntryType[ManufacturerChemicalField, ManufacturerChemical] = ManufacturerChemicalSchema
)

// ManufacturerChemicalFromFields constructs a ManufacturerChemical from values in schema order.
func ManufacturerChemicalFromFields(values []Value) (*ManufacturerChemical, error) {
	return ManufacturerChemicalSchema.FromFields(values)
}

// ManufacturerChemicalFieldNames returns the ManufacturerChemical fields in schema order.
func ManufacturerChemicalFieldNames() []ManufacturerChemicalField {
	return ManufacturerChemicalSchema.FieldNames()
}

// ParseManufacturerChemicalField returns the field whose label is label.
func ParseManufacturerChemicalField(label string) (ManufacturerChemicalField, error) {
	return ManufacturerChemicalSchema.Parse(label)
}

// Fields implements Entry.
func (m *ManufacturerChemical) Fields() []Value { return ManufacturerChemicalSchema.Fields(m) }

// Field implements Entry.
func (m *ManufacturerChemical) Field(name ManufacturerChemicalField) Value {
	return ManufacturerChemicalSchema.Field(m, name)
}
