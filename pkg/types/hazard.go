package types

// Hazard is a hazard statement.
type Hazard struct {
	Statement string
}

// HazardField identifies a field of Hazard.
type HazardField int

const (
	HazardStatement HazardField = iota
)

var hazardLabels = []string{"Statement"}

// Label implements Labeler.
func (f HazardField) Label() string { return enumLabel(hazardLabels, "HazardField", int(f)) }

func (f HazardField) String() string { return f.Label() }

// HazardSchema maps Hazard to and from scalar values.
var HazardSchema = NewSchema(HazardsTable,
	TextColumn(HazardStatement, func(h *Hazard) *string { return &h.Statement }),
)

var (
	_ Entry[HazardField]             = (*Hazard)(nil)
	_ EntryType[HazardField, Hazard] = HazardSchema
)

// HazardFromFields constructs a Hazard from values in schema order.
func HazardFromFields(values []Value) (*Hazard, error) { return HazardSchema.FromFields(values) }

// HazardFieldNames returns the Hazard fields in schema order.
func HazardFieldNames() []HazardField { return HazardSchema.FieldNames() }

// ParseHazardField returns the field whose label is label.
func ParseHazardField(label string) (HazardField, error) { return HazardSchema.Parse(label) }

// Fields implements Entry.
func (h *Hazard) Fields() []Value { return HazardSchema.Fields(h) }

// Field implements Entry.
func (h *Hazard) Field(name HazardField) Value { return HazardSchema.Field(h, name) }
