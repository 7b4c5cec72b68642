package sqlite

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/mesh-intelligence/chemicals/pkg/types"
)

// encodeRowJSON renders one JSONL record: the row ID followed by every field
// in schema order, keyed by column key. Text values become JSON strings and
// Flag values JSON booleans.
func encodeRowJSON(id string, keys []string, values []types.Value) (json.RawMessage, error) {
	if len(keys) != len(values) {
		return nil, fmt.Errorf("encoding row %s: %d keys for %d values", id, len(keys), len(values))
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	if err := writeMember(&buf, rowIDColumn, id); err != nil {
		return nil, err
	}
	for i, k := range keys {
		buf.WriteByte(',')
		if err := writeMember(&buf, k, values[i]); err != nil {
			return nil, fmt.Errorf("encoding %s: %w", k, err)
		}
	}
	buf.WriteByte('}')
	return json.RawMessage(buf.Bytes()), nil
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

// decodeRowJSON extracts the row ID and the field values, in schema order,
// from one JSONL record. Unknown keys are ignored. A missing key shortens
// the result, which the record schema then rejects as an arity mismatch.
func decodeRowJSON(keys []string, raw json.RawMessage) (string, []types.Value, error) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return "", nil, err
	}

	var id string
	if r, ok := obj[rowIDColumn]; ok {
		if err := json.Unmarshal(r, &id); err != nil {
			return "", nil, fmt.Errorf("%s: %w", rowIDColumn, err)
		}
	}
	if id == "" {
		return "", nil, types.ErrInvalidID
	}

	values := make([]types.Value, 0, len(keys))
	for _, k := range keys {
		r, ok := obj[k]
		if !ok {
			continue
		}
		var v types.Value
		if err := json.Unmarshal(r, &v); err != nil {
			return id, nil, fmt.Errorf("%s: %w", k, err)
		}
		values = append(values, v)
	}
	return id, values, nil
}
