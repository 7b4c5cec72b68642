package sqlite_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/mesh-intelligence/chemicals/pkg/sqlite"
	"github.com/mesh-intelligence/chemicals/pkg/types"
)

func TestNewBackend(t *testing.T) {
	cupboard := sqlite.NewBackend(sqlite.WithLogger(zaptest.NewLogger(t).Sugar()))
	require.NoError(t, cupboard.Attach(types.Config{Backend: types.BackendSQLite, DataDir: t.TempDir()}))
	defer cupboard.Detach()

	tbl, err := cupboard.GetTable(types.ManufacturersTable)
	require.NoError(t, err)

	acme := &types.Manufacturer{CompanyName: "Acme Adhesives", PhoneNumber: "555-0100"}
	id, err := tbl.Set("", acme)
	require.NoError(t, err)

	got, err := tbl.Get(id)
	require.NoError(t, err)
	assert.Equal(t, acme, got)
}
