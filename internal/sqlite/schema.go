package sqlite

import (
	"database/sql"
	"fmt"
	"strings"
	"unicode"

	"github.com/mesh-intelligence/chemicals/pkg/types"
)

// rowIDColumn is the primary key column every record table carries. Records
// themselves have no identity; the row ID belongs to storage.
const rowIDColumn = "row_id"

// columnKey derives a SQL column and JSON key from a field label:
// lower case, runs of non-alphanumerics collapsed to one underscore.
// "MSDS/SDS Path" becomes "msds_sds_path".
func columnKey(label string) string {
	var b strings.Builder
	pending := false
	for _, r := range strings.ToLower(label) {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			pending = true
			continue
		}
		if pending && b.Len() > 0 {
			b.WriteByte('_')
		}
		pending = false
		b.WriteRune(r)
	}
	return b.String()
}

// columnKeys returns the column key of every field of rt in schema order.
// Returns an error if two labels collapse to the same key or collide with
// the row ID column.
func columnKeys(rt types.RecordType) ([]string, error) {
	cols := rt.Columns()
	keys := make([]string, len(cols))
	seen := map[string]bool{rowIDColumn: true}
	for i, c := range cols {
		k := columnKey(c.Label)
		if k == "" || seen[k] {
			return nil, fmt.Errorf("%s: label %q maps to unusable column %q", rt.Name(), c.Label, k)
		}
		seen[k] = true
		keys[i] = k
	}
	return keys, nil
}

// sqlType maps a scalar kind to its SQLite storage type.
func sqlType(k types.Kind) string {
	switch k {
	case types.KindFlag:
		return "INTEGER"
	default:
		return "TEXT"
	}
}

// createTableDDL builds the CREATE TABLE statement for rt.
func createTableDDL(rt types.RecordType) (string, error) {
	keys, err := columnKeys(rt)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	fmt.Fprintf(&b, "CREATE TABLE %q (\n    %s TEXT PRIMARY KEY", rt.Name(), rowIDColumn)
	for i, c := range rt.Columns() {
		fmt.Fprintf(&b, ",\n    %q %s NOT NULL", keys[i], sqlType(c.Kind))
	}
	b.WriteString("\n);")
	return b.String(), nil
}

// createSchema creates one table per record type.
func createSchema(db *sql.DB, records []types.RecordType) error {
	for _, rt := range records {
		ddl, err := createTableDDL(rt)
		if err != nil {
			return err
		}
		if _, err := db.Exec(ddl); err != nil {
			return fmt.Errorf("creating table %s: %w", rt.Name(), err)
		}
	}
	return nil
}

// quoteColumns double-quotes each column name and joins them with commas.
func quoteColumns(cols []string) string {
	quoted := make([]string, len(cols))
	for i, c := range cols {
		quoted[i] = fmt.Sprintf("%q", c)
	}
	return strings.Join(quoted, ", ")
}

// placeholders returns n comma-separated "?" markers.
func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}
