package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/chemicals/pkg/types"
)

func TestColumnKey(t *testing.T) {
	tests := map[string]string{
		"Chemical Name":       "chemical_name",
		"MSDS/SDS Path":       "msds_sds_path",
		"QR Code":             "qr_code",
		"CAS Number":          "cas_number",
		"Active":              "active",
		"  Leading / trail  ": "leading_trail",
		"%%%":                 "",
	}
	for label, want := range tests {
		assert.Equal(t, want, columnKey(label), label)
	}
}

func TestColumnKeysAreUniquePerRecordType(t *testing.T) {
	for _, rt := range types.RecordTypes() {
		keys, err := columnKeys(rt)
		require.NoError(t, err, rt.Name())
		assert.Len(t, keys, len(rt.Columns()))
	}
}

func TestCreateTableDDL(t *testing.T) {
	ddl, err := createTableDDL(types.PictogramSchema)
	require.NoError(t, err)
	assert.Equal(t, `CREATE TABLE "pictograms" (
    row_id TEXT PRIMARY KEY,
    "picture_name" TEXT NOT NULL,
    "pictogram_path" TEXT NOT NULL
);`, ddl)

	ddl, err = createTableDDL(types.InventorySchema)
	require.NoError(t, err)
	assert.Contains(t, ddl, `"active" INTEGER NOT NULL`)
	assert.Contains(t, ddl, `"disposal_method" TEXT NOT NULL`)
}

func TestPlaceholders(t *testing.T) {
	assert.Equal(t, "?", placeholders(1))
	assert.Equal(t, "?, ?, ?", placeholders(3))
	assert.Equal(t, `"row_id", "unit"`, quoteColumns([]string{"row_id", "unit"}))
}
