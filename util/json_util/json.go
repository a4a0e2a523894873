// Package json_util provides JSON utilities including a raw message type
// that can be stored directly in a database column.
package json_util

import (
	"database/sql/driver"
	"errors"
	"fmt"
)

// RawMessage is a raw JSON value. Empty values marshal as "null".
type RawMessage []byte

// MarshalJSON returns m unchanged, or "null" when empty.
func (m RawMessage) MarshalJSON() ([]byte, error) {
	if len(m) == 0 {
		return []byte("null"), nil
	}
	return m, nil
}

// UnmarshalJSON sets *m to a copy of the JSON data.
func (m *RawMessage) UnmarshalJSON(data []byte) error {
	if m == nil {
		return errors.New("json_util.RawMessage: UnmarshalJSON on nil pointer")
	}
	*m = append((*m)[0:0], data...)
	return nil
}

// Value stores the raw JSON as text.
func (m RawMessage) Value() (driver.Value, error) {
	if len(m) == 0 {
		return nil, nil
	}
	return string(m), nil
}

// Scan reads the raw JSON back from a text or blob column.
func (m *RawMessage) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*m = nil
	case string:
		*m = append((*m)[0:0], v...)
	case []byte:
		*m = append((*m)[0:0], v...)
	default:
		return fmt.Errorf("json_util.RawMessage: cannot scan %T", value)
	}
	return nil
}
