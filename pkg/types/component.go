package types

// Component is one constituent substance listed for a chemical product.
type Component struct {
	ChemicalName      string
	CommonName        string
	CasNumber         string
	SubstanceNumber   string
	TradeSecretNumber string
}

// ComponentField identifies a field of Component.
type ComponentField int

// Component fields in canonical order.
const (
	ComponentChemicalName ComponentField = iota
	ComponentCommonName
	ComponentCasNumber
	ComponentSubstanceNumber
	ComponentTradeSecretNumber
)

var componentLabels = []string{
	"Chemical Name",
	"Common Name",
	"CAS Number",
	"Substance Number",
	"Trade Secret Number",
}

// Label implements Labeler.
func (f ComponentField) Label() string { return enumLabel(componentLabels, "ComponentField", int(f)) }

func (f ComponentField) String() string { return f.Label() }

// ComponentSchema maps Component to and from scalar values.
var ComponentSchema = NewSchema(ComponentsTable,
	TextColumn(ComponentChemicalName, func(c *Component) *string { return &c.ChemicalName }),
	TextColumn(ComponentCommonName, func(c *Component) *string { return &c.CommonName }),
	TextColumn(ComponentCasNumber, func(c *Component) *string { return &c.CasNumber }),
	TextColumn(ComponentSubstanceNumber, func(c *Component) *string { return &c.SubstanceNumber }),
	TextColumn(ComponentTradeSecretNumber, func(c *Component) *string { return &c.TradeSecretNumber }),
)

var (
	_ Entry[ComponentField]                = (*Component)(nil)
	_ EntryType[ComponentField, Component] = ComponentSchema
)

// ComponentFromFields constructs a Component from values in schema order.
func ComponentFromFields(values []Value) (*Component, error) { return ComponentSchema.FromFields(values) }

// ComponentFieldNames returns the Component fields in schema order.
func ComponentFieldNames() []ComponentField { return ComponentSchema.FieldNames() }

// ParseComponentField returns the field whose label is label.
func ParseComponentField(label string) (ComponentField, error) { return ComponentSchema.Parse(label) }

// Fields implements Entry.
func (c *Component) Fields() []Value { return ComponentSchema.Fields(c) }

// Field implements Entry.
func (c *Component) Field(name ComponentField) Value { return ComponentSchema.Field(c, name) }
