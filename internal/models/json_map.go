package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// JSONBMap is a JSON object column. It is stored as text so the same model
// works on postgres and sqlite. A nil map is NULL in the database and null
// in JSON.
type JSONBMap map[string]interface{}

func (m JSONBMap) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	raw, err := json.Marshal(map[string]interface{}(m))
	if err != nil {
		return nil, err
	}
	return string(raw), nil
}

func (m *JSONBMap) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*m = nil
		return nil
	case []byte:
		return m.decode(v)
	case string:
		return m.decode([]byte(v))
	default:
		return fmt.Errorf("cannot scan %T into JSONBMap", value)
	}
}

func (m JSONBMap) MarshalJSON() ([]byte, error) {
	if m == nil {
		return []byte("null"), nil
	}
	return json.Marshal(map[string]interface{}(m))
}

func (m *JSONBMap) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	return m.decode(data)
}

func (m *JSONBMap) decode(raw []byte) error {
	if len(raw) == 0 {
		*m = nil
		return nil
	}
	var object map[string]interface{}
	if err := json.Unmarshal(raw, &object); err != nil {
		return err
	}
	*m = object
	return nil
}
