package types

import "errors"

// Table provides uniform CRUD operations for a single record type.
// Records cross the interface as pointers to the concrete record struct
// (e.g. *Chemical); callers type-assert Get and Fetch results.
type Table interface {
	// Get retrieves the record with the given row ID.
	// Returns ErrNotFound if no row exists with that ID.
	Get(id string) (any, error)

	// Set creates or updates a record. When id is empty a new UUID v7 is
	// generated. Returns the actual ID used (generated or provided).
	Set(id string, data any) (string, error)

	// SetAll creates one row per record with generated IDs. Either every
	// record is stored or none is. Returns the IDs in input order.
	SetAll(records []any) ([]string, error)

	// Delete removes the row with the given ID.
	// Returns ErrNotFound if no row exists with that ID.
	Delete(id string) error

	// Fetch returns all rows matching the filter. Filter keys are field
	// labels, values are Value, string or bool. An empty filter returns
	// every row in the table, ordered by row ID.
	Fetch(filter map[string]any) ([]Row, error)
}

// Row pairs a stored record with the row ID the storage layer assigned it.
type Row struct {
	ID     string
	Record any
}

// Table operation errors.
var (
	ErrNotFound      = errors.New("entity not found")
	ErrInvalidID     = errors.New("invalid entity ID")
	ErrInvalidData   = errors.New("invalid entity data")
	ErrInvalidFilter = errors.New("invalid filter value type")
)
