package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isopropylValues is the Chemical row used throughout the original fixtures.
func isopropylValues() []Value {
	return []Value{
		Text("Isopropyl Alcohol"),
		Text("Cleaning"),
		Text("Liquid"),
		Text("Isopropyl Alcohol MSDS"),
		Text("124"),
		Text("20 years"),
		Text("10 years"),
		Flag(false),
		Flag(false),
		Flag(false),
		Text("Warning"),
	}
}

func TestChemicalFromFieldsExample(t *testing.T) {
	c, err := ChemicalFromFields(isopropylValues())
	require.NoError(t, err)

	assert.Equal(t, &Chemical{
		ChemicalName:     "Isopropyl Alcohol",
		Purpose:          "Cleaning",
		StateOfMatter:    "Liquid",
		MsdsSdsPath:      "Isopropyl Alcohol MSDS",
		QrCode:           "124",
		OpenedLifeSpan:   "20 years",
		UnopenedLifeSpan: "10 years",
		SignalWord:       "Warning",
	}, c)
	assert.Equal(t, Text("Warning"), c.Field(ChemicalSignalWord))
}

func TestChemicalFromFieldsTypeMismatch(t *testing.T) {
	values := isopropylValues()
	values[7] = Text("false")

	c, err := ChemicalFromFields(values)
	assert.Nil(t, c)
	require.ErrorIs(t, err, ErrTypeMismatch)

	var mismatch *TypeMismatchError
	require.True(t, errors.As(err, &mismatch))
	assert.Equal(t, ChemicalControlledSubstance, mismatch.Field)
	assert.Equal(t, 7, mismatch.Position)
	assert.Equal(t, KindFlag, mismatch.Expected)
	assert.Equal(t, KindText, mismatch.Got)
	assert.Contains(t, err.Error(), "Controlled Substance")
}

func TestFromFieldsFailFastLowestIndex(t *testing.T) {
	values := isopropylValues()
	values[9] = Text("no")   // Petroleum Base
	values[2] = Flag(true)   // State of Matter
	values[10] = Flag(false) // Signal Word

	_, err := ChemicalFromFields(values)
	var mismatch *TypeMismatchError
	require.True(t, errors.As(err, &mismatch))
	assert.Equal(t, ChemicalStateOfMatter, mismatch.Field)
	assert.Equal(t, 2, mismatch.Position)
	assert.Equal(t, KindText, mismatch.Expected)
}

func TestFromFieldsZeroValueMismatch(t *testing.T) {
	_, err := HazardFromFields([]Value{{}})
	var mismatch *TypeMismatchError
	require.True(t, errors.As(err, &mismatch))
	assert.Equal(t, HazardStatement, mismatch.Field)
	assert.Equal(t, Kind(0), mismatch.Got)
}

func TestFromFieldsArityMismatch(t *testing.T) {
	tests := []struct {
		name   string
		values []Value
	}{
		{name: "empty", values: nil},
		{name: "short", values: isopropylValues()[:10]},
		{name: "long", values: append(isopropylValues(), Text("extra"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := ChemicalFromFields(tt.values)
			assert.Nil(t, c)
			require.ErrorIs(t, err, ErrArityMismatch)

			var arity *ArityMismatchError
			require.True(t, errors.As(err, &arity))
			assert.Equal(t, 11, arity.Want)
			assert.Equal(t, len(tt.values), arity.Got)
			assert.Equal(t, ChemicalsTable, arity.Record)
		})
	}
}

func TestArityCheckedBeforeKinds(t *testing.T) {
	// A short row with a wrong kind at position 0 reports arity, not type.
	_, err := ManufacturerFromFields([]Value{Flag(true)})
	assert.ErrorIs(t, err, ErrArityMismatch)
	assert.NotErrorIs(t, err, ErrTypeMismatch)
}

func TestParseFieldNotFound(t *testing.T) {
	tests := []struct {
		name  string
		parse func(string) error
		label string
	}{
		{"chemical lower case", func(s string) error { _, err := ParseChemicalField(s); return err }, "chemical name"},
		{"chemical trailing space", func(s string) error { _, err := ParseChemicalField(s); return err }, "Chemical Name "},
		{"inventory unknown", func(s string) error { _, err := ParseInventoryField(s); return err }, "Quantity"},
		{"component punctuation", func(s string) error { _, err := ParseComponentField(s); return err }, "CAS-Number"},
		{"hazard empty", func(s string) error { _, err := ParseHazardField(s); return err }, ""},
		{"manufacturer", func(s string) error { _, err := ParseManufacturerField(s); return err }, "Email"},
		{"manufacturer chemical", func(s string) error { _, err := ParseManufacturerChemicalField(s); return err }, "Number"},
		{"pictogram", func(s string) error { _, err := ParsePictogramField(s); return err }, "Picture"},
		{"precaution", func(s string) error { _, err := ParsePrecautionField(s); return err }, "statement"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.parse(tt.label)
			require.ErrorIs(t, err, ErrFieldNotFound)

			var nf *FieldNotFoundError
			require.True(t, errors.As(err, &nf))
			assert.Equal(t, tt.label, nf.Label)
			assert.Contains(t, err.Error(), `"`+tt.label+`"`)
		})
	}
}

func TestParseLegacyAliases(t *testing.T) {
	f, err := ParseChemicalField("State Of Matter")
	require.NoError(t, err)
	assert.Equal(t, ChemicalStateOfMatter, f)
	assert.Equal(t, "State of Matter", f.Label())

	p, err := ParsePictogramField("PictureName")
	require.NoError(t, err)
	assert.Equal(t, PictogramPictureName, p)
	assert.Equal(t, "Picture Name", p.Label())

	d, err := ParseInventoryField("Disposal Method")
	require.NoError(t, err)
	assert.Equal(t, InventoryDisposalMethod, d)
	assert.Equal(t, "Disposal Method", d.Label())

	a, err := ParseInventoryField("Active")
	require.NoError(t, err)
	assert.Equal(t, InventoryActive, a)
}

func TestLabelOutsideEnumeration(t *testing.T) {
	assert.Equal(t, "ChemicalField(42)", ChemicalField(42).Label())
	assert.Equal(t, "PictogramField(-1)", PictogramField(-1).String())
	assert.True(t, (&Chemical{}).Field(ChemicalField(42)).IsZero())
}

func TestEncodeDecode(t *testing.T) {
	rt := RecordType(PictogramSchema)

	rec, err := rt.Decode([]Value{Text("Environmental Hazard"), Text("9")})
	require.NoError(t, err)
	p, ok := rec.(*Pictogram)
	require.True(t, ok, "Decode returns a pointer to the record struct")
	assert.Equal(t, "Environmental Hazard", p.PictureName)

	values, err := rt.Encode(p)
	require.NoError(t, err)
	assert.Equal(t, []Value{Text("Environmental Hazard"), Text("9")}, values)

	values, err = rt.Encode(*p)
	require.NoError(t, err)
	assert.Equal(t, []Value{Text("Environmental Hazard"), Text("9")}, values)

	_, err = rt.Encode(&Hazard{Statement: "Danger"})
	assert.ErrorIs(t, err, ErrInvalidData)

	_, err = rt.Encode((*Pictogram)(nil))
	assert.ErrorIs(t, err, ErrInvalidData)

	_, err = rt.Decode([]Value{Text("only one")})
	assert.ErrorIs(t, err, ErrArityMismatch)
}

func TestRecordTypeColumnsAndLookup(t *testing.T) {
	rt := RecordType(InventorySchema)
	cols := rt.Columns()
	require.Len(t, cols, 13)
	assert.Equal(t, ColumnInfo{Label: "Active", Kind: KindFlag}, cols[8])
	assert.Equal(t, ColumnInfo{Label: "Percent Remaining", Kind: KindText}, cols[12])

	i, err := rt.Lookup("Container Size")
	require.NoError(t, err)
	assert.Equal(t, 10, i)

	_, err = rt.Lookup("Container")
	assert.ErrorIs(t, err, ErrFieldNotFound)
}

func TestFieldNamesReturnsCopy(t *testing.T) {
	names := ChemicalFieldNames()
	names[0] = ChemicalSignalWord
	assert.Equal(t, ChemicalName, ChemicalFieldNames()[0])
}

func TestNewSchemaPanics(t *testing.T) {
	type rec struct{ A, B string }
	ref := func(r *rec) *string { return &r.A }

	assert.Panics(t, func() {
		NewSchema("dup", TextColumn(HazardStatement, ref), TextColumn(HazardStatement, ref))
	}, "duplicate field")

	assert.Panics(t, func() {
		NewSchema("nil", Column[HazardField, rec]{Field: HazardStatement, Kind: KindText})
	}, "missing accessor")

	assert.Panics(t, func() {
		NewSchema("alias", TextColumn(HazardStatement, ref)).
			WithAliases(map[string]HazardField{"Statement": HazardStatement})
	}, "alias shadows label")

	assert.Panics(t, func() {
		NewSchema("alias", TextColumn(HazardStatement, ref)).
			WithAliases(map[string]HazardField{"Other": HazardField(3)})
	}, "alias targets unknown field")
}

func TestLookupRecordType(t *testing.T) {
	for _, name := range StandardTableNames {
		rt, err := LookupRecordType(name)
		require.NoError(t, err)
		assert.Equal(t, name, rt.Name())
	}

	_, err := LookupRecordType("reagents")
	assert.ErrorIs(t, err, ErrTableNotFound)
	assert.Len(t, RecordTypes(), len(StandardTableNames))
}
