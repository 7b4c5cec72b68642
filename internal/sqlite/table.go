package sqlite

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/chemicals/pkg/types"
)

// Compile-time interface check: table must implement Table.
var _ types.Table = (*table)(nil)

// table implements types.Table for one record type. Records are dehydrated
// with RecordType.Encode before writes and hydrated with RecordType.Decode
// after reads, so the table never touches record fields directly.
type table struct {
	rt      types.RecordType
	keys    []string // Column keys in schema order.
	backend *Backend

	// rejected holds the raw JSONL lines that did not load on Attach. They
	// are written back after the loaded rows on every rewrite.
	rejected []json.RawMessage
}

func newTable(b *Backend, rt types.RecordType, rejected []json.RawMessage) *table {
	// Keys were validated by createSchema during Attach.
	keys, _ := columnKeys(rt)
	return &table{rt: rt, keys: keys, backend: b, rejected: rejected}
}

// newUUID generates a UUID v7 string, falling back to v4.
func newUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

// Get retrieves a record by row ID and returns a pointer to the concrete
// record struct. Returns ErrInvalidID if id is empty, ErrNotFound if absent.
func (t *table) Get(id string) (any, error) {
	if id == "" {
		return nil, types.ErrInvalidID
	}
	t.backend.mu.RLock()
	defer t.backend.mu.RUnlock()

	if !t.backend.attached {
		return nil, types.ErrCupboardDetached
	}

	row := t.backend.db.QueryRow(fmt.Sprintf(
		"SELECT %s FROM %q WHERE %s = ?", t.selectColumns(), t.rt.Name(), rowIDColumn,
	), id)
	_, record, err := t.scanRow(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting %s %s: %w", t.rt.Name(), id, err)
	}
	return record, nil
}

// Set creates or updates a record. If id is empty, generates a UUID v7.
// data must be a record of this table's type (pointer or value); anything
// else returns ErrInvalidData. Returns the row ID.
func (t *table) Set(id string, data any) (string, error) {
	values, err := t.rt.Encode(data)
	if err != nil {
		return "", err
	}
	t.backend.mu.Lock()
	defer t.backend.mu.Unlock()

	if !t.backend.attached {
		return "", types.ErrCupboardDetached
	}

	if id == "" {
		id = newUUID()
	}
	created, err := t.upsert(t.backend.db, id, values)
	if err != nil {
		return "", err
	}

	if err := t.persistJSONL(); err != nil {
		return "", fmt.Errorf("persisting %s.jsonl: %w", t.rt.Name(), err)
	}

	t.backend.logger.Debugw("row saved", "table", t.rt.Name(), "row_id", id, "created", created)
	return id, nil
}

// SetAll creates one row per record, with generated IDs, in a single
// transaction: either every record is stored or none is. The JSONL file is
// rewritten once. Returns the new IDs in input order.
func (t *table) SetAll(records []any) ([]string, error) {
	rows := make([][]types.Value, len(records))
	for i, rec := range records {
		values, err := t.rt.Encode(rec)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i+1, err)
		}
		rows[i] = values
	}

	t.backend.mu.Lock()
	defer t.backend.mu.Unlock()

	if !t.backend.attached {
		return nil, types.ErrCupboardDetached
	}

	tx, err := t.backend.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("beginning %s batch: %w", t.rt.Name(), err)
	}
	defer tx.Rollback()

	ids := make([]string, len(rows))
	for i, values := range rows {
		ids[i] = newUUID()
		if _, err := t.upsert(tx, ids[i], values); err != nil {
			return nil, fmt.Errorf("record %d: %w", i+1, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing %s batch: %w", t.rt.Name(), err)
	}

	if err := t.persistJSONL(); err != nil {
		return nil, fmt.Errorf("persisting %s.jsonl: %w", t.rt.Name(), err)
	}

	t.backend.logger.Debugw("rows saved", "table", t.rt.Name(), "rows", len(ids))
	return ids, nil
}

// execer is satisfied by *sql.DB and *sql.Tx.
type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
	QueryRow(query string, args ...any) *sql.Row
}

// upsert updates the row with id, or inserts it if absent. Reports whether
// the row was created.
func (t *table) upsert(db execer, id string, values []types.Value) (bool, error) {
	var exists bool
	err := db.QueryRow(fmt.Sprintf(
		"SELECT 1 FROM %q WHERE %s = ?", t.rt.Name(), rowIDColumn,
	), id).Scan(&exists)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return false, fmt.Errorf("checking %s existence: %w", t.rt.Name(), err)
	}

	if exists {
		sets := make([]string, len(t.keys))
		for i, k := range t.keys {
			sets[i] = fmt.Sprintf("%q = ?", k)
		}
		args := append(rowArgs("", values)[1:], id)
		_, err = db.Exec(fmt.Sprintf(
			"UPDATE %q SET %s WHERE %s = ?", t.rt.Name(), strings.Join(sets, ", "), rowIDColumn,
		), args...)
	} else {
		_, err = db.Exec(fmt.Sprintf(
			"INSERT INTO %q (%s) VALUES (%s)",
			t.rt.Name(), t.selectColumns(), placeholders(len(t.keys)+1),
		), rowArgs(id, values)...)
	}
	if err != nil {
		return false, fmt.Errorf("persisting %s: %w", t.rt.Name(), err)
	}
	return !exists, nil
}

// Delete removes a row by ID.
// Returns ErrInvalidID if id is empty, ErrNotFound if absent.
func (t *table) Delete(id string) error {
	if id == "" {
		return types.ErrInvalidID
	}
	t.backend.mu.Lock()
	defer t.backend.mu.Unlock()

	if !t.backend.attached {
		return types.ErrCupboardDetached
	}

	res, err := t.backend.db.Exec(fmt.Sprintf(
		"DELETE FROM %q WHERE %s = ?", t.rt.Name(), rowIDColumn,
	), id)
	if err != nil {
		return fmt.Errorf("deleting %s %s: %w", t.rt.Name(), id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting %s %s: %w", t.rt.Name(), id, err)
	}
	if n == 0 {
		return types.ErrNotFound
	}

	if err := t.persistJSONL(); err != nil {
		return fmt.Errorf("persisting %s.jsonl: %w", t.rt.Name(), err)
	}

	t.backend.logger.Debugw("row deleted", "table", t.rt.Name(), "row_id", id)
	return nil
}

// Fetch returns rows matching every filter entry, ordered by row ID.
// Filter keys are field labels (ErrFieldNotFound otherwise); values must be
// a Value, string or bool whose kind matches the field (ErrInvalidFilter
// otherwise).
func (t *table) Fetch(filter map[string]any) ([]types.Row, error) {
	where, args, err := t.buildWhere(filter)
	if err != nil {
		return nil, err
	}

	t.backend.mu.RLock()
	defer t.backend.mu.RUnlock()

	if !t.backend.attached {
		return nil, types.ErrCupboardDetached
	}

	rows, err := t.backend.db.Query(fmt.Sprintf(
		"SELECT %s FROM %q%s ORDER BY %s", t.selectColumns(), t.rt.Name(), where, rowIDColumn,
	), args...)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", t.rt.Name(), err)
	}
	defer rows.Close()

	result := []types.Row{}
	for rows.Next() {
		id, record, err := t.scanRow(rows)
		if err != nil {
			return nil, fmt.Errorf("fetching %s: %w", t.rt.Name(), err)
		}
		result = append(result, types.Row{ID: id, Record: record})
	}
	return result, rows.Err()
}

// buildWhere translates a label-keyed filter into a WHERE clause.
func (t *table) buildWhere(filter map[string]any) (string, []any, error) {
	if len(filter) == 0 {
		return "", nil, nil
	}
	cols := t.rt.Columns()
	conds := make([]string, 0, len(filter))
	args := make([]any, 0, len(filter))
	for label, raw := range filter {
		i, err := t.rt.Lookup(label)
		if err != nil {
			return "", nil, err
		}
		v, err := types.ValueOf(raw)
		if err != nil || v.Kind() != cols[i].Kind {
			return "", nil, fmt.Errorf("%w: %s wants %s, got %T", types.ErrInvalidFilter, label, cols[i].Kind, raw)
		}
		conds = append(conds, fmt.Sprintf("%q = ?", t.keys[i]))
		args = append(args, sqlValue(v))
	}
	return " WHERE " + strings.Join(conds, " AND "), args, nil
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanRow reads row_id plus every field column, then constructs the record.
func (t *table) scanRow(s scanner) (string, any, error) {
	cols := t.rt.Columns()
	var id string
	dest := make([]any, len(cols)+1)
	dest[0] = &id
	for i, c := range cols {
		if c.Kind == types.KindFlag {
			dest[i+1] = new(int64)
		} else {
			dest[i+1] = new(string)
		}
	}
	if err := s.Scan(dest...); err != nil {
		return "", nil, err
	}

	values := make([]types.Value, len(cols))
	for i, c := range cols {
		if c.Kind == types.KindFlag {
			values[i] = types.Flag(*dest[i+1].(*int64) != 0)
		} else {
			values[i] = types.Text(*dest[i+1].(*string))
		}
	}
	record, err := t.rt.Decode(values)
	if err != nil {
		return id, nil, fmt.Errorf("hydrating row %s: %w", id, err)
	}
	return id, record, nil
}

// selectColumns lists row_id followed by the field columns, quoted.
func (t *table) selectColumns() string {
	return quoteColumns(append([]string{rowIDColumn}, t.keys...))
}

// persistJSONL rewrites the table's JSONL file from SQLite, followed by the
// lines that were rejected on Attach. The caller must hold t.backend.mu.
func (t *table) persistJSONL() error {
	rows, err := t.backend.db.Query(fmt.Sprintf(
		"SELECT %s FROM %q ORDER BY %s", t.selectColumns(), t.rt.Name(), rowIDColumn,
	))
	if err != nil {
		return fmt.Errorf("querying %s: %w", t.rt.Name(), err)
	}
	defer rows.Close()

	var records []json.RawMessage
	for rows.Next() {
		id, record, err := t.scanRow(rows)
		if err != nil {
			return err
		}
		values, err := t.rt.Encode(record)
		if err != nil {
			return err
		}
		line, err := encodeRowJSON(id, t.keys, values)
		if err != nil {
			return err
		}
		records = append(records, line)
	}
	if err := rows.Err(); err != nil {
		return err
	}
	records = append(records, t.rejected...)
	return writeJSONL(jsonlPath(t.backend.config.DataDir, t.rt), records)
}

// sqlValue converts a scalar to its SQLite representation: Text as TEXT,
// Flag as INTEGER 0 or 1.
func sqlValue(v types.Value) any {
	switch v.Kind() {
	case types.KindFlag:
		if b, _ := v.AsFlag(); b {
			return int64(1)
		}
		return int64(0)
	default:
		s, _ := v.AsText()
		return s
	}
}

// rowArgs returns the statement arguments for one row: id, then every value.
func rowArgs(id string, values []types.Value) []any {
	args := make([]any, 0, len(values)+1)
	args = append(args, id)
	for _, v := range values {
		args = append(args, sqlValue(v))
	}
	return args
}
