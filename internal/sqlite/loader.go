package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/chemicals/pkg/types"
)

// loadAllJSONL reads each record type's JSONL file from dataDir and inserts
// the rows into SQLite. Loading is transactional: all files load or the
// database stays empty. Every row is validated by constructing the record
// from its scalar values.
//
// Lines that cannot be loaded (malformed JSON, rows that fail construction,
// duplicate row IDs) are logged and returned unchanged in file order, keyed
// by table name, so later rewrites of the file keep them.
func loadAllJSONL(db *sql.DB, dataDir string, records []types.RecordType, logger *zap.SugaredLogger) (map[string][]json.RawMessage, error) {
	tx, err := db.Begin()
	if err != nil {
		return nil, fmt.Errorf("beginning load transaction: %w", err)
	}
	defer tx.Rollback()

	rejected := make(map[string][]json.RawMessage)
	for _, rt := range records {
		path := jsonlPath(dataDir, rt)
		lines, malformed, err := readJSONL(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", rt.Name(), err)
		}
		for _, l := range malformed {
			logger.Warnw("kept malformed JSONL line", "table", rt.Name(), "line", l.num)
		}

		loaded, skipped, err := insertRows(tx, rt, lines, logger)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", rt.Name(), err)
		}

		kept := append(malformed, skipped...)
		sort.Slice(kept, func(i, j int) bool { return kept[i].num < kept[j].num })
		for _, l := range kept {
			rejected[rt.Name()] = append(rejected[rt.Name()], l.data)
		}
		logger.Debugw("loaded table", "table", rt.Name(), "rows", loaded, "kept", len(kept))
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing load transaction: %w", err)
	}
	return rejected, nil
}

// insertRows decodes JSONL records of rt and inserts the valid ones.
// Returns the number of rows inserted and the raw lines that were not.
func insertRows(tx *sql.Tx, rt types.RecordType, lines []jsonlLine, logger *zap.SugaredLogger) (int, []jsonlLine, error) {
	if len(lines) == 0 {
		return 0, nil, nil
	}
	keys, err := columnKeys(rt)
	if err != nil {
		return 0, nil, err
	}

	cols := append([]string{rowIDColumn}, keys...)
	stmt, err := tx.Prepare(fmt.Sprintf(
		"INSERT INTO %q (%s) VALUES (%s)",
		rt.Name(), quoteColumns(cols), placeholders(len(cols)),
	))
	if err != nil {
		return 0, nil, fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	var (
		inserted int
		skipped  []jsonlLine
	)
	for _, line := range lines {
		id, values, err := decodeRowJSON(keys, line.data)
		if err == nil {
			// Construct the record so only schema-valid rows reach SQLite.
			_, err = rt.Decode(values)
		}
		if err != nil {
			logger.Warnw("kept invalid row", "table", rt.Name(), "line", line.num, "row_id", id, "error", err)
			skipped = append(skipped, line)
			continue
		}

		if _, err := stmt.Exec(rowArgs(id, values)...); err != nil {
			// Duplicate row IDs keep the first occurrence loaded.
			logger.Warnw("kept unloadable row", "table", rt.Name(), "line", line.num, "row_id", id, "error", err)
			skipped = append(skipped, line)
			continue
		}
		inserted++
	}
	return inserted, skipped, nil
}
