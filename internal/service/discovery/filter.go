// Package discovery selects profiles a viewer has not acted on yet.
package discovery

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/oggyb/muzz-dating/internal/app"
	"github.com/oggyb/muzz-dating/internal/db"
	svcErr "github.com/oggyb/muzz-dating/internal/errors"
	"github.com/oggyb/muzz-dating/internal/logger"
	"github.com/oggyb/muzz-dating/internal/repository"
	"github.com/oggyb/muzz-dating/internal/service/matching"
)

// Filter builds discovery batches. Exclusions come from the Match Engine.
type Filter struct {
	appCtx     *app.AppContext
	engine     *matching.Engine
	users      *repository.UserRepository
	candidates *repository.DiscoveryRepository
}

// NewFilter creates a Discovery Filter.
func NewFilter(appCtx *app.AppContext, engine *matching.Engine) *Filter {
	return &Filter{
		appCtx:     appCtx,
		engine:     engine,
		users:      repository.NewUserRepository(appCtx.DB),
		candidates: repository.NewDiscoveryRepository(appCtx.DB),
	}
}

// Discover returns up to Discovery.Limit profiles for viewer, sampled
// uniformly from every eligible candidate.
//
// Behavior:
//   - Viewer without a profile → ErrProfileIncomplete.
//   - Excludes the viewer, users already liked or matched, users the viewer
//     passed, inactive users and users without a profile.
//   - Age must sit within the viewer's [min_age, max_age]; gender must fit
//     the viewer's looking_for, and the candidate's looking_for must accept
//     the viewer.
func (f *Filter) Discover(ctx context.Context, viewerID uint64) ([]db.Profile, error) {
	viewer, err := f.users.FindProfile(ctx, viewerID)
	if err != nil {
		return nil, fmt.Errorf("load viewer profile: %w", err)
	}
	if viewer == nil {
		return nil, svcErr.ErrProfileIncomplete
	}

	excluded, err := f.engine.ExcludedCandidates(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	ids, err := f.candidates.CandidateIDs(ctx, repository.DiscoveryFilters{
		ViewerID:     viewerID,
		ViewerGender: viewer.Gender,
		LookingFor:   viewer.LookingFor,
		MinAge:       viewer.MinAge,
		MaxAge:       viewer.MaxAge,
		ExcludeIDs:   excluded,
		SkipPassed:   true,
	})
	if err != nil {
		return nil, fmt.Errorf("select candidates: %w", err)
	}

	ids = f.sample(ids)
	profiles, err := f.users.ProfilesByUserIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load candidates: %w", err)
	}

	out := make([]db.Profile, 0, len(ids))
	for _, id := range ids {
		if p, ok := profiles[id]; ok {
			out = append(out, p)
		}
	}

	logger.FromContext(ctx, f.appCtx.Logger).Debug("discover", "viewer", viewerID, "excluded", len(excluded), "returned", len(out))
	return out, nil
}

func (f *Filter) sample(ids []uint64) []uint64 {
	limit := f.appCtx.Config.Discovery.Limit
	if limit <= 0 {
		limit = 10
	}
	rand.Shuffle(len(ids), func(i, j int) { ids[i], ids[j] = ids[j], ids[i] })
	if len(ids) > limit {
		ids = ids[:limit]
	}
	return ids
}
