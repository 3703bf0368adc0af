package pagination

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"
)

// Cursor is the opaque pagination state we encode/decode.
// ID + AtUnix (in millis) establish a stable keyset position for feeds
// ordered by (timestamp DESC, id DESC).
type Cursor struct {
	ID     uint64 `json:"id"`
	AtUnix int64  `json:"at_unix,omitempty"`
}

// IsZero reports whether the cursor points at the first page.
func (c Cursor) IsZero() bool {
	return c.ID == 0 || c.AtUnix == 0
}

// At returns the cursor timestamp.
func (c Cursor) At() time.Time {
	return time.UnixMilli(c.AtUnix).UTC()
}

// Encode converts a Cursor into a Base64 string.
func Encode(c Cursor) (string, error) {
	b, err := json.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("failed to marshal cursor: %w", err)
	}
	return base64.URLEncoding.EncodeToString(b), nil
}

// Decode parses a Base64 string into a Cursor.
// Empty token → empty cursor (first page).
func Decode(token string) (Cursor, error) {
	if token == "" {
		return Cursor{}, nil
	}

	b, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return Cursor{}, fmt.Errorf("invalid pagination token")
	}

	var c Cursor
	if err := json.Unmarshal(b, &c); err != nil {
		return Cursor{}, fmt.Errorf("invalid pagination token")
	}
	return c, nil
}

// Page trims a limit+1 result set down to limit and builds the token of
// the next page from the last kept row. key extracts (id, timestamp).
func Page[T any](rows []T, limit int, key func(T) (uint64, time.Time)) ([]T, *string) {
	if limit <= 0 || len(rows) <= limit {
		return rows, nil
	}
	id, at := key(rows[limit-1])
	token, err := Encode(Cursor{ID: id, AtUnix: at.UnixMilli()})
	if err != nil {
		return rows[:limit], nil
	}
	return rows[:limit], &token
}

// Token safely dereferences an optional pagination token.
func Token(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
