package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// weekKey formats a week-start timestamp for storage. Only the date matters;
// the timezone is reconstructed by the caller.
func weekKey(t time.Time) string {
	return t.Format(dateLayout)
}

// marshalJSON encodes v for a TEXT column, normalizing nil slices to "[]".
func marshalJSON(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encoding json column: %w", err)
	}
	s := string(data)
	if s == "null" {
		s = "[]"
	}
	return s, nil
}

// unmarshalJSON decodes a TEXT column into out, treating empty as absent.
func unmarshalJSON(s string, out any) error {
	if s == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(s), out); err != nil {
		return fmt.Errorf("decoding json column: %w", err)
	}
	return nil
}

// parseNullableTime parses a sql.NullString into a *time.Time.
// Returns nil if the value is NULL, empty, or fails to parse.
func parseNullableTime(s sql.NullString, layout string) *time.Time {
	if !s.Valid || s.String == "" {
		return nil
	}
	t, err := time.Parse(layout, s.String)
	if err != nil {
		return nil
	}
	return &t
}

// nullableTimeToString converts a *time.Time to a value suitable for SQLite
// storage. Returns nil (SQL NULL) if the pointer is nil.
func nullableTimeToString(t *time.Time, layout string) any {
	if t == nil {
		return nil
	}
	return t.Format(layout)
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func intToBool(i int) bool {
	return i != 0
}

func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}
