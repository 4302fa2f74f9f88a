package application

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// JSONMap maps a Go map onto a JSON column. Gorm needs the Valuer/Scanner
// pair; both MySQL and the sqlite driver used in tests hand the column back
// as []byte or string.
type JSONMap map[string]interface{}

func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

func (m *JSONMap) Scan(src interface{}) error {
	if src == nil {
		*m = nil
		return nil
	}
	var b []byte
	switch v := src.(type) {
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return errors.New("jsonmap: unsupported column type")
	}
	if len(b) == 0 {
		*m = nil
		return nil
	}
	return json.Unmarshal(b, m)
}
