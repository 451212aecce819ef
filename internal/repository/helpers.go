package repository

import (
	"database/sql"
	"encoding/json"
	"time"
)

// marshalStrings encodes a string slice as JSON for SQLite storage.
// A nil slice becomes SQL NULL, preserving the absent-vs-empty distinction
// of the optional day/time filters.
func marshalStrings(s []string) (any, error) {
	if s == nil {
		return nil, nil
	}
	data, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// unmarshalStrings decodes a JSON string column back into a slice.
// SQL NULL and empty arrays both come back as nil.
func unmarshalStrings(s sql.NullString) ([]string, error) {
	if !s.Valid || s.String == "" {
		return nil, nil
	}
	var out []string
	if err := json.Unmarshal([]byte(s.String), &out); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out, nil
}

// nowUTC returns the current UTC time formatted as RFC3339.
func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}
