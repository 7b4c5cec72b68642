package sheet

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/chemicals/pkg/types"
)

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, types.PictogramSchema, []any{
		&types.Pictogram{PictureName: "Environmental Hazard", PictogramPath: "9"},
		types.Pictogram{PictureName: "Health, Hazard", PictogramPath: "8"},
	})
	require.NoError(t, err)
	assert.Equal(t,
		"Picture Name,Pictogram Path\n"+
			"Environmental Hazard,9\n"+
			"\"Health, Hazard\",8\n",
		buf.String())
}

func TestWriteRejectsForeignRecord(t *testing.T) {
	err := Write(&bytes.Buffer{}, types.PictogramSchema, []any{&types.Hazard{Statement: "Danger"}})
	assert.ErrorIs(t, err, types.ErrInvalidData)
}

func TestWriteReadRoundTrip(t *testing.T) {
	lots := []any{
		&types.ChemicalInventory{
			LotNumber:        "91622",
			PurchaseDate:     "12/3/2018",
			ArrivalDate:      "12/5/2018",
			Active:           true,
			ContainerType:    "Tube",
			ContainerSize:    "2",
			Unit:             "oz",
			PercentRemaining: "75",
		},
		&types.ChemicalInventory{LotNumber: "5746", DisposalMethod: "Landfill"},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, types.InventorySchema, lots))

	got, err := Read(&buf, types.InventorySchema)
	require.NoError(t, err)
	assert.Equal(t, lots, got)
}

func TestRead(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []any
		wantErr error
	}{
		{
			name:  "columns in any order",
			input: "Pictogram Path,Picture Name\n6,Toxic\n",
			want:  []any{&types.Pictogram{PictureName: "Toxic", PictogramPath: "6"}},
		},
		{
			name:  "legacy header alias",
			input: "PictureName,Pictogram Path\nToxic,6\n",
			want:  []any{&types.Pictogram{PictureName: "Toxic", PictogramPath: "6"}},
		},
		{
			name:  "empty input",
			input: "",
		},
		{
			name:  "header only",
			input: "Picture Name,Pictogram Path\n",
		},
		{
			name:    "unknown header",
			input:   "Picture Name,Path\nToxic,6\n",
			wantErr: types.ErrFieldNotFound,
		},
		{
			name:    "missing column",
			input:   "Picture Name\nToxic\n",
			wantErr: types.ErrArityMismatch,
		},
		{
			name:    "duplicate column",
			input:   "Picture Name,PictureName\nToxic,Toxic\n",
			wantErr: ErrDuplicateColumn,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Read(strings.NewReader(tt.input), types.PictogramSchema)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadFlagCells(t *testing.T) {
	header := "Chemical Name,Purpose,State of Matter,MSDS/SDS Path,QR Code,Opened Life Span," +
		"Unopened Life Span,Controlled Substance,Restricted Substance,Petroleum Base,Signal Word\n"

	got, err := Read(strings.NewReader(header+
		"Isopropyl Alcohol,Cleaning,Liquid,,,1 year,2 years,FALSE,0,T,Warning\n"),
		types.ChemicalSchema)
	require.NoError(t, err)
	require.Len(t, got, 1)
	c := got[0].(*types.Chemical)
	assert.False(t, c.ControlledSubstance)
	assert.False(t, c.RestrictedSubstance)
	assert.True(t, c.PetroleumBase)
	assert.Equal(t, "Warning", c.SignalWord)

	_, err = Read(strings.NewReader(header+
		"Isopropyl Alcohol,Cleaning,Liquid,,,1 year,2 years,no,yes,maybe,Warning\n"),
		types.ChemicalSchema)
	var tm *types.TypeMismatchError
	require.ErrorAs(t, err, &tm)
	assert.Equal(t, types.ChemicalControlledSubstance, tm.Field)
	assert.Equal(t, 7, tm.Position)
	assert.Contains(t, err.Error(), "line 2")
}

func TestReadRaggedRow(t *testing.T) {
	_, err := Read(strings.NewReader("Picture Name,Pictogram Path\nToxic\n"), types.PictogramSchema)
	assert.Error(t, err)
}
