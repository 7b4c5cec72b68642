package sqlite

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/mesh-intelligence/chemicals/pkg/types"
)

func TestLoadJSONLValidatesRows(t *testing.T) {
	dir := t.TempDir()
	lines := "" +
		// Valid row; unknown field tolerated.
		`{"row_id":"i1","lot_number":"12","purchase_date":"12/3/2018","arrival_date":"","open_date":"","expiration_date":"","disposal_date":"","removal_date":"","disposal_method":"","active":true,"container_type":"Bottle","container_size":"1","unit":"L","percent_remaining":"50","supplier":"x"}` + "\n" +
		// Active stored as text: type mismatch, skipped.
		`{"row_id":"i2","lot_number":"13","purchase_date":"","arrival_date":"","open_date":"","expiration_date":"","disposal_date":"","removal_date":"","disposal_method":"","active":"true","container_type":"","container_size":"","unit":"","percent_remaining":""}` + "\n" +
		// Missing fields: arity mismatch, skipped.
		`{"row_id":"i3","lot_number":"14"}` + "\n" +
		// Malformed JSON, skipped.
		`{"row_id":` + "\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "chemical_inventory.jsonl"), []byte(lines), 0o644))

	core, logs := observer.New(zapcore.WarnLevel)
	b := NewBackend(WithLogger(zap.New(core).Sugar()))
	require.NoError(t, b.Attach(types.Config{Backend: types.BackendSQLite, DataDir: dir}))
	defer b.Detach()

	tbl, err := b.GetTable(types.ChemicalInventoryTable)
	require.NoError(t, err)

	rows, err := tbl.Fetch(nil)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "i1", rows[0].ID)
	assert.Equal(t, &types.ChemicalInventory{
		LotNumber:        "12",
		PurchaseDate:     "12/3/2018",
		Active:           true,
		ContainerType:    "Bottle",
		ContainerSize:    "1",
		Unit:             "L",
		PercentRemaining: "50",
	}, rows[0].Record)

	invalid := logs.FilterMessage("kept invalid row").All()
	require.Len(t, invalid, 2)
	assert.Equal(t, int64(2), invalid[0].ContextMap()["line"])
	assert.Equal(t, int64(3), invalid[1].ContextMap()["line"])

	malformed := logs.FilterMessage("kept malformed JSONL line").All()
	require.Len(t, malformed, 1)
	assert.Equal(t, int64(4), malformed[0].ContextMap()["line"])
}

func TestLoadJSONLDuplicateIDKeepsFirst(t *testing.T) {
	dir := t.TempDir()
	lines := `{"row_id":"h1","statement":"Danger"}` + "\n" +
		`{"row_id":"h1","statement":"Warning"}` + "\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "hazards.jsonl"), []byte(lines), 0o644))

	b := NewBackend()
	require.NoError(t, b.Attach(types.Config{Backend: types.BackendSQLite, DataDir: dir}))
	defer b.Detach()

	tbl, err := b.GetTable(types.HazardsTable)
	require.NoError(t, err)
	got, err := tbl.Get("h1")
	require.NoError(t, err)
	assert.Equal(t, &types.Hazard{Statement: "Danger"}, got)
}

func TestPersistRewritesJSONL(t *testing.T) {
	b, dir := attachTemp(t)
	tbl, err := b.GetTable(types.HazardsTable)
	require.NoError(t, err)

	_, err = tbl.Set("h1", &types.Hazard{Statement: "Danger"})
	require.NoError(t, err)
	_, err = tbl.Set("h2", &types.Hazard{Statement: "Warning"})
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "hazards.jsonl"))
	require.NoError(t, err)
	assert.Equal(t,
		`{"row_id":"h1","statement":"Danger"}`+"\n"+`{"row_id":"h2","statement":"Warning"}`+"\n",
		string(data))

	require.NoError(t, tbl.Delete("h1"))
	data, err = os.ReadFile(filepath.Join(dir, "hazards.jsonl"))
	require.NoError(t, err)
	assert.Equal(t, `{"row_id":"h2","statement":"Warning"}`+"\n", string(data))
}

func TestUnloadedLinesSurviveRewrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hazards.jsonl")
	invalid := `{"row_id":"r1","statement":42}`
	garbage := `not json`
	duplicate := `{"row_id":"h1","statement":"Warning"}`
	seed := `{"row_id":"h1","statement":"Danger"}` + "\n" +
		invalid + "\n" +
		"\n" +
		garbage + "\n" +
		duplicate + "\n"
	require.NoError(t, os.WriteFile(path, []byte(seed), 0o644))

	b := NewBackend()
	require.NoError(t, b.Attach(types.Config{Backend: types.BackendSQLite, DataDir: dir}))
	tbl, err := b.GetTable(types.HazardsTable)
	require.NoError(t, err)

	id, err := tbl.Set("", &types.Hazard{Statement: "Flammable"})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	// UUID v7 IDs sort before "h1".
	assert.Equal(t,
		`{"row_id":"`+id+`","statement":"Flammable"}`+"\n"+
			`{"row_id":"h1","statement":"Danger"}`+"\n"+
			invalid+"\n"+
			garbage+"\n"+
			duplicate+"\n",
		string(data))

	require.NoError(t, tbl.Delete("h1"))
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	assert.Equal(t, []string{`{"row_id":"` + id + `","statement":"Flammable"}`, invalid, garbage, duplicate}, lines)

	// With h1 gone the former duplicate loads; the rest are kept again.
	require.NoError(t, b.Detach())
	core, logs := observer.New(zapcore.WarnLevel)
	b2 := NewBackend(WithLogger(zap.New(core).Sugar()))
	require.NoError(t, b2.Attach(types.Config{Backend: types.BackendSQLite, DataDir: dir}))
	defer b2.Detach()
	assert.Equal(t, 1, logs.FilterMessage("kept invalid row").Len())
	assert.Equal(t, 1, logs.FilterMessage("kept malformed JSONL line").Len())

	tbl2, err := b2.GetTable(types.HazardsTable)
	require.NoError(t, err)
	rows, err := tbl2.Fetch(nil)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, &types.Hazard{Statement: "Flammable"}, rows[0].Record)
	assert.Equal(t, &types.Hazard{Statement: "Warning"}, rows[1].Record)
}
