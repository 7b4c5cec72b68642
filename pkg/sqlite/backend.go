// Package sqlite provides the public API for the SQLite Cupboard backend.
// This package exposes the factory function for creating SQLite backends
// while keeping implementation details internal.
package sqlite

import (
	"go.uber.org/zap"

	"github.com/mesh-intelligence/chemicals/internal/sqlite"
	"github.com/mesh-intelligence/chemicals/pkg/types"
)

// Option configures a backend created by NewBackend.
type Option = sqlite.Option

// WithLogger routes backend events to logger.
func WithLogger(logger *zap.SugaredLogger) Option {
	return sqlite.WithLogger(logger)
}

// NewBackend creates a new SQLite backend instance.
// The backend is not attached; call Attach with a Config to initialize.
//
// Example:
//
//	backend := sqlite.NewBackend()
//	err := backend.Attach(types.Config{
//	    Backend: types.BackendSQLite,
//	    DataDir: ".chemicals-db",
//	})
//	defer backend.Detach()
//
//	tbl, _ := backend.GetTable(types.ChemicalsTable)
//	id, _ := tbl.Set("", &types.Chemical{ChemicalName: "Acetone"})
func NewBackend(opts ...Option) types.Cupboard {
	return sqlite.NewBackend(opts...)
}
