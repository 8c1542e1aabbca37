package task

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Details is the schema-free payload attached to a TaskLog entry. It is
// persisted as a JSON document so action kinds can carry whatever shape
// they need without schema changes.
type Details map[string]any

// Value implements driver.Valuer, serializing the payload to JSON.
func (d Details) Value() (driver.Value, error) {
	if d == nil {
		return "{}", nil
	}
	data, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal log details: %w", err)
	}
	return string(data), nil
}

// Scan implements sql.Scanner, deserializing the stored JSON document.
func (d *Details) Scan(value any) error {
	if value == nil {
		*d = Details{}
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported details column type %T", value)
	}

	if len(data) == 0 {
		*d = Details{}
		return nil
	}
	if err := json.Unmarshal(data, d); err != nil {
		return fmt.Errorf("failed to unmarshal log details: %w", err)
	}
	return nil
}
