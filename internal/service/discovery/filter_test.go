package discovery_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oggyb/muzz-dating/internal/db"
	svcErr "github.com/oggyb/muzz-dating/internal/errors"
	"github.com/oggyb/muzz-dating/internal/service/discovery"
	"github.com/oggyb/muzz-dating/internal/service/matching"
	"github.com/oggyb/muzz-dating/internal/testutil"
)

func userIDs(profiles []db.Profile) []uint64 {
	out := make([]uint64, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, p.UserID)
	}
	return out
}

func TestDiscover_RequiresProfile(t *testing.T) {
	env := testutil.NewEnv(t)
	engine := matching.NewEngine(env.App)
	filter := discovery.NewFilter(env.App, engine)

	u := testutil.CreateUser(t, env.DB, "u@test.com")
	_, err := filter.Discover(context.Background(), u.ID)
	assert.ErrorIs(t, err, svcErr.ErrProfileIncomplete)
}

func TestDiscover_Exclusions(t *testing.T) {
	ctx := context.Background()
	env := testutil.NewEnv(t)
	engine := matching.NewEngine(env.App)
	filter := discovery.NewFilter(env.App, engine)

	viewer := testutil.CreateUser(t, env.DB, "viewer@test.com")
	testutil.CreateProfile(t, env.DB, viewer.ID, func(p *db.Profile) {
		p.Gender = db.GenderMale
		p.LookingFor = db.GenderFemale
		p.MinAge = 25
		p.MaxAge = 35
	})

	mk := func(email string, opts ...func(*db.Profile)) uint64 {
		u := testutil.CreateUser(t, env.DB, email)
		testutil.CreateProfile(t, env.DB, u.ID, opts...)
		return u.ID
	}

	fresh := mk("fresh@test.com")
	likesViewer := mk("likesme@test.com") // liked the viewer, still a candidate
	liked := mk("liked@test.com")
	matched := mk("matched@test.com")
	passed := mk("passed@test.com")
	mk("young@test.com", func(p *db.Profile) { p.Age = 22 })
	mk("man@test.com", func(p *db.Profile) { p.Gender = db.GenderMale })
	mk("picky@test.com", func(p *db.Profile) { p.LookingFor = db.GenderFemale })
	inactive := mk("inactive@test.com")
	require.NoError(t, env.DB.Model(&db.User{}).Where("id = ?", inactive).Update("active", false).Error)

	_, err := engine.RegisterLike(ctx, likesViewer, viewer.ID)
	require.NoError(t, err)
	_, err = engine.RegisterLike(ctx, viewer.ID, liked)
	require.NoError(t, err)
	testutil.CreateMatch(t, env.DB, viewer.ID, matched)
	require.NoError(t, engine.Pass(ctx, viewer.ID, passed))

	got, err := filter.Discover(ctx, viewer.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint64{fresh, likesViewer}, userIDs(got))
}

func TestDiscover_LimitAndSampling(t *testing.T) {
	ctx := context.Background()
	env := testutil.NewEnv(t)
	env.App.Config.Discovery.Limit = 3
	filter := discovery.NewFilter(env.App, matching.NewEngine(env.App))

	viewer := testutil.CreateUser(t, env.DB, "viewer@test.com")
	testutil.CreateProfile(t, env.DB, viewer.ID)

	pool := map[uint64]bool{}
	for i := 0; i < 8; i++ {
		u := testutil.CreateUser(t, env.DB, fmt.Sprintf("c%d@test.com", i))
		testutil.CreateProfile(t, env.DB, u.ID)
		pool[u.ID] = true
	}

	got, err := filter.Discover(ctx, viewer.ID)
	require.NoError(t, err)
	require.Len(t, got, 3)

	seen := map[uint64]bool{}
	for _, p := range got {
		assert.True(t, pool[p.UserID])
		assert.False(t, seen[p.UserID], "no duplicates in a batch")
		seen[p.UserID] = true
	}
}

func TestDiscover_EmptyPool(t *testing.T) {
	env := testutil.NewEnv(t)
	filter := discovery.NewFilter(env.App, matching.NewEngine(env.App))

	viewer := testutil.CreateUser(t, env.DB, "viewer@test.com")
	testutil.CreateProfile(t, env.DB, viewer.ID)

	got, err := filter.Discover(context.Background(), viewer.ID)
	require.NoError(t, err)
	assert.Empty(t, got)
}
