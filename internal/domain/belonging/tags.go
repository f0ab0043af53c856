package belonging

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Tags is an ordered set of free-form labels attached to a belonging.
// It is stored as a JSON array in a TEXT column so the same representation
// works on SQLite and Postgres.
type Tags []string

// Value implements driver.Valuer. A nil slice is stored as an empty array.
func (t Tags) Value() (driver.Value, error) {
	if t == nil {
		return "[]", nil
	}
	data, err := json.Marshal(t)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan implements sql.Scanner
func (t *Tags) Scan(value interface{}) error {
	if value == nil {
		*t = Tags{}
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into Tags", value)
	}

	if len(data) == 0 {
		*t = Tags{}
		return nil
	}

	var parsed []string
	if err := json.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("invalid tags payload: %w", err)
	}
	if parsed == nil {
		parsed = []string{}
	}
	*t = parsed
	return nil
}

// Contains reports whether the tag is present
func (t Tags) Contains(tag string) bool {
	for _, existing := range t {
		if existing == tag {
			return true
		}
	}
	return false
}
