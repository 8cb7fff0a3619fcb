package database

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"
)

// Row is one query result record keyed by column alias.
type Row map[string]any

// collectRows drains rows into the generic Row shape. Text columns arrive
// from the driver as []byte and are normalized to string so consumers can
// compare and print them directly.
func collectRows(rows *sql.Rows) ([]Row, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read columns: %w", err)
	}

	out := make([]Row, 0)
	for rows.Next() {
		values := make([]any, len(columns))
		scanTargets := make([]any, len(columns))
		for i := range values {
			scanTargets[i] = &values[i]
		}
		if err := rows.Scan(scanTargets...); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		row := make(Row, len(columns))
		for i, column := range columns {
			row[column] = normalizeValue(values[i])
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}
	return out, nil
}

func normalizeValue(v any) any {
	if b, ok := v.([]byte); ok {
		return string(b)
	}
	return v
}

// String returns the value for key as a string. Missing keys and NULLs come
// back empty.
func (r Row) String(key string) string {
	switch v := r[key].(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

// Int returns the value for key as an int64. Missing keys, NULLs and
// non-numeric values come back zero.
func (r Row) Int(key string) int64 {
	switch v := r[key].(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case string:
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}

// ListSeparator joins the tags and metadata value lists in their stored form.
const ListSeparator = ", "

// JoinList serializes an ordered string list into its stored form. A value
// containing the separator itself will not survive a round trip; the store
// only guarantees ", " granularity.
func JoinList(values []string) string {
	return strings.Join(values, ListSeparator)
}

// SplitList reverses JoinList. An empty stored value yields no entries.
func SplitList(stored string) []string {
	if stored == "" {
		return nil
	}
	return strings.Split(stored, ListSeparator)
}
