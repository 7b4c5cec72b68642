package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/mesh-intelligence/chemicals/pkg/types"
)

// idKey is the JSON member and column heading that carries the row ID.
const idKey = "ID"

func tableList() string {
	return strings.Join(types.StandardTableNames, ", ")
}

// storageError classifies an error from a table operation: bad input and
// missing rows are user errors, anything else is a system error.
func storageError(err error) error {
	for _, target := range []error{
		types.ErrNotFound,
		types.ErrInvalidID,
		types.ErrInvalidData,
		types.ErrInvalidFilter,
		types.ErrTypeMismatch,
		types.ErrArityMismatch,
		types.ErrFieldNotFound,
	} {
		if errors.Is(err, target) {
			return userError(err)
		}
	}
	return sysError(err)
}

// recordJSON renders a record as a JSON object keyed by field label in
// schema order, preceded by its row ID.
func recordJSON(rt types.RecordType, id string, rec any) (json.RawMessage, error) {
	values, err := rt.Encode(rec)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	if err := writeMember(&buf, idKey, id); err != nil {
		return nil, err
	}
	for i, c := range rt.Columns() {
		buf.WriteByte(',')
		if err := writeMember(&buf, c.Label, values[i]); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeMember(buf *bytes.Buffer, key string, value any) error {
	k, err := json.Marshal(key)
	if err != nil {
		return err
	}
	v, err := json.Marshal(value)
	if err != nil {
		return err
	}
	buf.Write(k)
	buf.WriteByte(':')
	buf.Write(v)
	return nil
}

// printJSON writes v indented. json.RawMessage values keep their member order.
func printJSON(w io.Writer, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}

// printRows writes rows as a JSON array or as a tab-aligned table with one
// column per field.
func printRows(w io.Writer, rt types.RecordType, rows []types.Row, jsonMode bool) error {
	if jsonMode {
		out := make([]json.RawMessage, 0, len(rows))
		for _, row := range rows {
			obj, err := recordJSON(rt, row.ID, row.Record)
			if err != nil {
				return err
			}
			out = append(out, obj)
		}
		return printJSON(w, out)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	header := []string{idKey}
	for _, c := range rt.Columns() {
		header = append(header, c.Label)
	}
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	for _, row := range rows {
		values, err := rt.Encode(row.Record)
		if err != nil {
			return err
		}
		cells := []string{row.ID}
		for _, v := range values {
			cells = append(cells, fmt.Sprint(v.Interface()))
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	return tw.Flush()
}

// printRecord writes one record as JSON or as label/value lines.
func printRecord(w io.Writer, rt types.RecordType, id string, rec any, jsonMode bool) error {
	if jsonMode {
		obj, err := recordJSON(rt, id, rec)
		if err != nil {
			return err
		}
		return printJSON(w, obj)
	}

	values, err := rt.Encode(rec)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "%s:\t%s\n", idKey, id)
	for i, c := range rt.Columns() {
		fmt.Fprintf(tw, "%s:\t%v\n", c.Label, values[i].Interface())
	}
	return tw.Flush()
}

// defaultValues returns the empty record of rt: empty Text and false Flag
// at every position.
func defaultValues(rt types.RecordType) []types.Value {
	cols := rt.Columns()
	values := make([]types.Value, len(cols))
	for i, c := range cols {
		if c.Kind == types.KindFlag {
			values[i] = types.Flag(false)
		} else {
			values[i] = types.Text("")
		}
	}
	return values
}

// applyJSON overlays a label-keyed JSON object onto base. Labels are
// resolved with the record type's parser, so legacy labels are accepted;
// the row ID member is ignored. Kinds are not checked here: constructing
// the record reports any mismatch with its field and position.
func applyJSON(rt types.RecordType, base []types.Value, data []byte) ([]types.Value, error) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrInvalidData, err)
	}

	values := append([]types.Value(nil), base...)
	for label, raw := range obj {
		if label == idKey {
			continue
		}
		pos, err := rt.Lookup(label)
		if err != nil {
			return nil, err
		}
		var v types.Value
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, fmt.Errorf("%s: %w", label, err)
		}
		values[pos] = v
	}
	return values, nil
}
