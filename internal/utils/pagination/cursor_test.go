package pagination

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode(t *testing.T) {
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	token, err := Encode(Cursor{ID: 9, AtUnix: at.UnixMilli()})
	require.NoError(t, err)

	c, err := Decode(token)
	require.NoError(t, err)
	assert.Equal(t, uint64(9), c.ID)
	assert.Equal(t, at, c.At())
	assert.False(t, c.IsZero())
}

func TestDecodeEmptyAndInvalid(t *testing.T) {
	c, err := Decode("")
	require.NoError(t, err)
	assert.True(t, c.IsZero())

	_, err = Decode("%%%")
	assert.Error(t, err)

	_, err = Decode("bm90LWpzb24=") // "not-json"
	assert.Error(t, err)
}

func TestPage(t *testing.T) {
	type row struct {
		id uint64
		at time.Time
	}
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	rows := []row{{3, base.Add(3 * time.Second)}, {2, base.Add(2 * time.Second)}, {1, base.Add(time.Second)}}
	key := func(r row) (uint64, time.Time) { return r.id, r.at }

	kept, next := Page(rows, 2, key)
	require.Len(t, kept, 2)
	require.NotNil(t, next)

	c, err := Decode(*next)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), c.ID)

	kept, next = Page(rows, 5, key)
	assert.Len(t, kept, 3)
	assert.Nil(t, next)
	assert.Equal(t, "", Token(next))
}
