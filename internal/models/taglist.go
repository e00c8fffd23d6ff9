package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// TagList is an ordered sequence of free-text tags stored in a single text
// column as JSON. A nil (or empty) list is stored as SQL NULL so that
// "no tags" round-trips as absent rather than as an empty array.
type TagList []string

// Value implements the driver.Valuer interface.
func (t TagList) Value() (driver.Value, error) {
	if len(t) == 0 {
		return nil, nil
	}
	return json.Marshal([]string(t))
}

// Scan implements the sql.Scanner interface.
func (t *TagList) Scan(value interface{}) error {
	if value == nil {
		*t = nil
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("unsupported tags column type %T", value)
	}

	return json.Unmarshal(bytes, t)
}
