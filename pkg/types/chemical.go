package types

// Chemical describes the identity and handling profile of a chemical.
type Chemical struct {
	ChemicalName        string
	Purpose             string
	StateOfMatter       string
	MsdsSdsPath         string
	QrCode              string
	OpenedLifeSpan      string
	UnopenedLifeSpan    string
	ControlledSubstance bool
	RestrictedSubstance bool
	PetroleumBase       bool
	SignalWord          string
}

// ChemicalField identifies a field of Chemical.
type ChemicalField int

// Chemical fields in canonical order.
const (
	ChemicalName ChemicalField = iota
	ChemicalPurpose
	ChemicalStateOfMatter
	ChemicalMsdsSdsPath
	ChemicalQrCode
	ChemicalOpenedLifeSpan
	ChemicalUnopenedLifeSpan
	ChemicalControlledSubstance
	ChemicalRestrictedSubstance
	ChemicalPetroleumBase
	ChemicalSignalWord
)

var chemicalLabels = []string{
	"Chemical Name",
	"Purpose",
	"State of Matter",
	"MSDS/SDS Path",
	"QR Code",
	"Opened Life Span",
	"Unopened Life Span",
	"Controlled Substance",
	"Restricted Substance",
	"Petroleum Base",
	"Signal Word",
}

// Label implements Labeler.
func (f ChemicalField) Label() string { return enumLabel(chemicalLabels, "ChemicalField", int(f)) }

func (f ChemicalField) String() string { return f.Label() }

// ChemicalSchema maps Chemical to and from scalar values. "State Of Matter"
// is accepted by the parser for rows written with the older header.
var ChemicalSchema = NewSchema(ChemicalsTable,
	TextColumn(ChemicalName, func(c *Chemical) *string { return &c.ChemicalName }),
	TextColumn(ChemicalPurpose, func(c *Chemical) *string { return &c.Purpose }),
	TextColumn(ChemicalStateOfMatter, func(c *Chemical) *string { return &c.StateOfMatter }),
	TextColumn(ChemicalMsdsSdsPath, func(c *Chemical) *string { return &c.MsdsSdsPath }),
	TextColumn(ChemicalQrCode, func(c *Chemical) *string { return &c.QrCode }),
	TextColumn(ChemicalOpenedLifeSpan, func(c *Chemical) *string { return &c.OpenedLifeSpan }),
	TextColumn(ChemicalUnopenedLifeSpan, func(c *Chemical) *string { return &c.UnopenedLifeSpan }),
	FlagColumn(ChemicalControlledSubstance, func(c *Chemical) *bool { return &c.ControlledSubstance }),
	FlagColumn(ChemicalRestrictedSubstance, func(c *Chemical) *bool { return &c.RestrictedSubstance }),
	FlagColumn(ChemicalPetroleumBase, func(c *Chemical) *bool { return &c.PetroleumBase }),
	TextColumn(ChemicalSignalWord, func(c *Chemical) *string { return &c.SignalWord }),
).WithAliases(map[string]ChemicalField{
	"State Of Matter": ChemicalStateOfMatter,
})

var (
	_ Entry[ChemicalField]               = (*Chemical)(nil)
	_ EntryType[ChemicalField, Chemical] = ChemicalSchema
)

// ChemicalFromFields constructs a Chemical from values in schema order.
func ChemicalFromFields(values []Value) (*Chemical, error) { return ChemicalSchema.FromFields(values) }

// ChemicalFieldNames returns the Chemical fields in schema order.
func ChemicalFieldNames() []ChemicalField { return ChemicalSchema.FieldNames() }

// ParseChemicalField returns the field whose label is label.
func ParseChemicalField(label string) (ChemicalField, error) { return ChemicalSchema.Parse(label) }

// Fields implements Entry.
func (c *Chemical) Fields() []Value { return ChemicalSchema.Fields(c) }

// Field implements Entry.
func (c *Chemical) Field(name ChemicalField) Value { return ChemicalSchema.Field(c, name) }
