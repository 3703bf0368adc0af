package seed_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oggyb/muzz-dating/internal/db"
	"github.com/oggyb/muzz-dating/internal/seed"
	"github.com/oggyb/muzz-dating/internal/testutil"
)

func count(t *testing.T, env *testutil.Env, model any, where ...any) int64 {
	t.Helper()
	var n int64
	q := env.DB.Model(model)
	if len(where) > 0 {
		q = q.Where(where[0], where[1:]...)
	}
	require.NoError(t, q.Count(&n).Error)
	return n
}

func TestSeedMinimalTestData(t *testing.T) {
	ctx := context.Background()
	env := testutil.NewEnv(t)

	require.NoError(t, seed.SeedMinimalTestData(ctx, env.App))

	assert.Equal(t, int64(3), count(t, env, &db.User{}))
	assert.Equal(t, int64(3), count(t, env, &db.Profile{}))
	assert.Equal(t, int64(3), count(t, env, &db.Like{}))
	assert.Equal(t, int64(1), count(t, env, &db.Pass{}))
	assert.Equal(t, int64(1), count(t, env, &db.Match{}, "is_match = ?", true))
	assert.Equal(t, int64(1), count(t, env, &db.Message{}, "is_read = ?", false))

	// running it again starts from scratch
	require.NoError(t, seed.SeedMinimalTestData(ctx, env.App))
	assert.Equal(t, int64(3), count(t, env, &db.User{}))
	assert.Equal(t, int64(1), count(t, env, &db.Message{}))
}

func TestSeedTestData(t *testing.T) {
	ctx := context.Background()
	env := testutil.NewEnv(t)

	require.NoError(t, seed.SeedTestData(ctx, env.App))

	assert.Equal(t, int64(20), count(t, env, &db.User{}))
	assert.Equal(t, int64(20), count(t, env, &db.Profile{}))
	assert.Positive(t, count(t, env, &db.Like{}))
	assert.Positive(t, count(t, env, &db.Match{}, "is_match = ?", true))

	// no same-gender interactions, and every match has both flags set
	var matches []db.Match
	require.NoError(t, env.DB.Where("is_match = ?", true).Find(&matches).Error)
	for _, m := range matches {
		assert.True(t, m.User1Likes && m.User2Likes)
		assert.NotNil(t, m.MatchedAt)
		assert.Less(t, m.User1ID, m.User2ID)
	}
}
