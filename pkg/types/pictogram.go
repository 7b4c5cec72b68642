package types

// Pictogram is a GHS hazard pictogram and the path to its image.
type Pictogram struct {
	PictureName   string
	PictogramPath string
}

// PictogramField identifies a field of Pictogram.
type PictogramField int

// Pictogram fields in canonical order.
const (
	PictogramPictureName PictogramField = iota
	PictogramPath
)

var pictogramLabels = []string{
	"Picture Name",
	"Pictogram Path",
}

// Label implements Labeler.
func (f PictogramField) Label() string { return enumLabel(pictogramLabels, "PictogramField", int(f)) }

func (f PictogramField) String() string { return f.Label() }

// PictogramSchema maps Pictogram to and from scalar values. "PictureName"
// is accepted by the parser for headers written by older exports.
var PictogramSchema = NewSchema(PictogramsTable,
	TextColumn(PictogramPictureName, func(p *Pictogram) *string { return &p.PictureName }),
	TextColumn(PictogramPath, func(p *Pictogram) *string { return &p.PictogramPath }),
).WithAliases(map[string]PictogramField{
	"PictureName": PictogramPictureName,
})

var (
	_ Entry[PictogramField]                = (*Pictogram)(nil)
	_ EntryType[PictogramField, Pictogram] = PictogramSchema
)

// PictogramFromFields constructs a Pictogram from values in schema order.
func PictogramFromFields(values []Value) (*Pictogram, error) { return PictogramSchema.FromFields(values) }

// PictogramFieldNames returns the Pictogram fields in schema order.
func PictogramFieldNames() []PictogramField { return PictogramSchema.FieldNames() }

// ParsePictogramField returns the field whose label is label.
func ParsePictogramField(label string) (PictogramField, error) { return PictogramSchema.Parse(label) }

// Fields implements Entry.
func (p *Pictogram) Fields() []Value { return PictogramSchema.Fields(p) }

// Field implements Entry.
func (p *Pictogram) Field(name PictogramField) Value { return PictogramSchema.Field(p, name) }
