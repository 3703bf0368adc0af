package db

import (
	"database/sql/driver"
	"encoding/json"
)

// Interests is an ordered list of interest tags stored as a JSON array of
// strings in a text column.
//
// Decoding is lenient: NULL, empty or malformed column values load as an
// empty list instead of failing the whole row scan.
type Interests []string

// GormDataType keeps the column a plain text type on every dialect.
func (Interests) GormDataType() string {
	return "text"
}

// Value implements driver.Valuer. A nil list is stored as "[]".
func (i Interests) Value() (driver.Value, error) {
	if i == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(i))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner. It never returns an error.
func (i *Interests) Scan(value any) error {
	*i = ParseInterests(value)
	return nil
}

// ParseInterests decodes a stored interests value, degrading to an empty
// list on anything that is not a JSON array of strings.
func ParseInterests(value any) Interests {
	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return Interests{}
	}

	var out []string
	if err := json.Unmarshal(raw, &out); err != nil || out == nil {
		return Interests{}
	}
	return Interests(out)
}
