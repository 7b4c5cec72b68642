// Package sheet reads and writes records of any record type as CSV. The
// header row carries field labels; each following row is one record with
// Text cells written verbatim and Flag cells as "true" or "false".
package sheet

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/mesh-intelligence/chemicals/pkg/types"
)

// ErrDuplicateColumn is returned when a header names the same field twice.
var ErrDuplicateColumn = errors.New("duplicate column")

// Write encodes records of type rt as CSV: one header row of labels in
// schema order, then one row per record.
func Write(w io.Writer, rt types.RecordType, records []any) error {
	cw := csv.NewWriter(w)

	cols := rt.Columns()
	header := make([]string, len(cols))
	for i, c := range cols {
		header[i] = c.Label
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	row := make([]string, len(cols))
	for n, rec := range records {
		values, err := rt.Encode(rec)
		if err != nil {
			return fmt.Errorf("record %d: %w", n+1, err)
		}
		for i, v := range values {
			row[i] = cell(v)
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("record %d: %w", n+1, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func cell(v types.Value) string {
	if b, ok := v.AsFlag(); ok {
		return strconv.FormatBool(b)
	}
	s, _ := v.AsText()
	return s
}

// Read decodes CSV produced by Write, or by a spreadsheet using the same
// labels. Header columns may appear in any order and may use any label the
// record type parses, including legacy aliases. Every record is built with
// rt.Decode, so a header with missing columns fails with an arity mismatch
// and an unparseable flag cell with a type mismatch.
func Read(r io.Reader, rt types.RecordType) ([]any, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	positions, err := headerPositions(rt, header)
	if err != nil {
		return nil, err
	}

	cols := rt.Columns()
	var records []any
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		line, _ := cr.FieldPos(0)

		values := make([]types.Value, len(cols))
		for i, raw := range row {
			pos := positions[i]
			values[pos] = parseCell(cols[pos].Kind, raw)
		}
		rec, err := rt.Decode(values)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// headerPositions maps each header column to its schema position.
func headerPositions(rt types.RecordType, header []string) ([]int, error) {
	cols := rt.Columns()
	if len(header) != len(cols) {
		return nil, &types.ArityMismatchError{Record: rt.Name(), Want: len(cols), Got: len(header)}
	}

	positions := make([]int, len(header))
	seen := make(map[int]bool, len(header))
	for i, label := range header {
		pos, err := rt.Lookup(label)
		if err != nil {
			return nil, fmt.Errorf("header: %w", err)
		}
		if seen[pos] {
			return nil, fmt.Errorf("header: %w: %s", ErrDuplicateColumn, cols[pos].Label)
		}
		seen[pos] = true
		positions[i] = pos
	}
	return positions, nil
}

// parseCell converts a cell to the kind its column expects. A flag cell that
// is not a boolean stays Text so that Decode reports the mismatch with the
// field and position.
func parseCell(kind types.Kind, raw string) types.Value {
	if kind == types.KindFlag {
		if b, err := strconv.ParseBool(raw); err == nil {
			return types.Flag(b)
		}
	}
	return types.Text(raw)
}
