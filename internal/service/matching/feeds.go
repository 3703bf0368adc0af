package matching

import (
	"context"
	"fmt"
	"strconv"

	"github.com/oggyb/muzz-dating/internal/db"
	"github.com/oggyb/muzz-dating/internal/logger"
)

const defaultPageSize = 20

// MatchSummary is one confirmed match seen from one participant.
type MatchSummary struct {
	Match         db.Match
	CounterpartID uint64
	Profile       *db.Profile // nil when the counterpart has no profile
}

// ListMatches returns the actor's confirmed matches, newest first.
func (e *Engine) ListMatches(ctx context.Context, actorID uint64, token *string, limit int) ([]MatchSummary, *string, error) {
	rows, next, err := e.matches.ListMatched(ctx, actorID, token, pageSize(limit))
	if err != nil {
		return nil, nil, err
	}

	ids := make([]uint64, 0, len(rows))
	for _, m := range rows {
		ids = append(ids, m.Other(actorID))
	}
	profiles, err := e.users.ProfilesByUserIDs(ctx, ids)
	if err != nil {
		return nil, nil, fmt.Errorf("load match profiles: %w", err)
	}

	out := make([]MatchSummary, 0, len(rows))
	for _, m := range rows {
		s := MatchSummary{Match: m, CounterpartID: m.Other(actorID)}
		if p, ok := profiles[s.CounterpartID]; ok {
			s.Profile = &p
		}
		out = append(out, s)
	}
	return out, next, nil
}

// ListLikedYou returns likes received by recipient that are still
// unanswered: not liked back, not passed. Newest first, cursor paginated.
func (e *Engine) ListLikedYou(ctx context.Context, recipientID uint64, token *string, limit int) ([]db.Like, *string, error) {
	logger.FromContext(ctx, e.appCtx.Logger).Debug("ListLikedYou called", "recipient", recipientID, "token", token != nil)
	return e.likes.GetPendingLikers(ctx, recipientID, token, pageSize(limit))
}

// CountLikedYou returns how many unanswered likes recipient has.
// Cache-first strategy:
//  1. Attempts to read from Redis (likes:pending:userID).
//  2. If cache miss or parse error, falls back to DB.
//  3. The DB count is cached with the configured TTL unless a like or a pass
//     invalidated the counter while it was being read.
func (e *Engine) CountLikedYou(ctx context.Context, recipientID uint64) (int64, error) {
	rc := e.appCtx.RedisCache
	ttl := e.appCtx.Config.Cache.LikesTTL

	return rc.CountOrLoad(ctx, rc.KeyForLikedYouCount(recipientID), ttl, func(ctx context.Context) (int64, error) {
		return e.likes.CountPendingLikers(ctx, recipientID)
	})
}

// invalidateLikedYou drops cached pending-like counters. A failure only
// costs freshness until the TTL runs out, so it is logged, not returned.
func (e *Engine) invalidateLikedYou(ctx context.Context, userIDs ...uint64) {
	rc := e.appCtx.RedisCache
	keys := make([]string, 0, len(userIDs))
	for _, id := range userIDs {
		keys = append(keys, rc.KeyForLikedYouCount(id))
	}
	if err := rc.InvalidateCount(ctx, keys...); err != nil {
		logger.FromContext(ctx, e.appCtx.Logger).Warn("failed to invalidate like counters", "users", fmtIDs(userIDs), "err", err)
	}
}

func pageSize(limit int) int {
	if limit <= 0 || limit > 100 {
		return defaultPageSize
	}
	return limit
}

func fmtIDs(ids []uint64) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = strconv.FormatUint(id, 10)
	}
	return out
}
