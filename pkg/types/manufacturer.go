package types

// Manufacturer is a company that produces or distributes chemicals.
type Manufacturer struct {
	CompanyName string
	Address     string
	PhoneNumber string
	Website     string
}

// ManufacturerField identifies a field of Manufacturer.
type ManufacturerField int

// Manufacturer fields in canonical order.
const (
	ManufacturerCompanyName ManufacturerField = iota
	ManufacturerAddress
	ManufacturerPhoneNumber
	ManufacturerWebsite
)

var manufacturerLabels = []string{
	"Company Name",
	"Address",
	"Phone Number",
	"Website",
}

// Label implements Labeler.
func (f ManufacturerField) Label() string {
	return enumLabel(manufacturerLabels, "ManufacturerField", int(f))
}

func (f ManufacturerField) String() string { return f.Label() }

// ManufacturerSchema maps Manufacturer to and from scalar values.
var ManufacturerSchema = NewSchema(ManufacturersTable,
	TextColumn(ManufacturerCompanyName, func(m *Manufacturer) *string { return &m.CompanyName }),
	TextColumn(ManufacturerAddress, func(m *Manufacturer) *string { return &m.Address }),
	TextColumn(ManufacturerPhoneNumber, func(m *Manufacturer) *string { return &m.PhoneNumber }),
	TextColumn(ManufacturerWebsite, func(m *Manufacturer) *string { return &m.Website }),
)

var (
	_ Entry[ManufacturerField]                   = (*Manufacturer)(nil)
	_ EntryType[ManufacturerField, Manufacturer] = ManufacturerSchema
)

// ManufacturerFromFields constructs a Manufacturer from values in schema order.
func ManufacturerFromFields(values []Value) (*Manufacturer, error) {
	return ManufacturerSchema.FromFields(values)
}

// ManufacturerFieldNames returns the Manufacturer fields in schema order.
func ManufacturerFieldNames() []ManufacturerField { return ManufacturerSchema.FieldNames() }

// ParseManufacturerField returns the field whose label is label.
func ParseManufacturerField(label string) (ManufacturerField, error) {
	return ManufacturerSchema.Parse(label)
}

// Fields implements Entry.
func (m *Manufacturer) Fields() []Value { return ManufacturerSchema.Fields(m) }

// Field implements Entry.
func (m *Manufacturer) Field(name ManufacturerField) Value { return ManufacturerSchema.Field(m, name) }
