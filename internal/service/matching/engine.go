package matching

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/oggyb/muzz-dating/internal/app"
	"github.com/oggyb/muzz-dating/internal/db"
	svcErr "github.com/oggyb/muzz-dating/internal/errors"
	"github.com/oggyb/muzz-dating/internal/logger"
	"github.com/oggyb/muzz-dating/internal/repository"
)

// maxLikeAttempts bounds RegisterLike: the first try plus one retry on a
// pair conflict.
const maxLikeAttempts = 2

// LikeResult reports the outcome of RegisterLike.
type LikeResult struct {
	MatchID    uint64
	IsNewMatch bool
}

// Engine turns one-directional likes into mutual matches and owns the
// Match lifecycle: NO_INTEREST -> ONE_SIDED(who) -> MATCHED (terminal).
type Engine struct {
	appCtx  *app.AppContext
	users   *repository.UserRepository
	likes   *repository.LikeRepository
	matches *repository.MatchRepository
}

// NewEngine creates a Match Engine on top of the AppContext store.
func NewEngine(appCtx *app.AppContext) *Engine {
	return &Engine{
		appCtx:  appCtx,
		users:   repository.NewUserRepository(appCtx.DB),
		likes:   repository.NewLikeRepository(appCtx.DB),
		matches: repository.NewMatchRepository(appCtx.DB),
	}
}

// errPairConflict marks a transaction that lost a race on the Match row.
var errPairConflict = errors.New("match pair conflict")

// RegisterLike records actor -> target interest and reports whether it
// completed a mutual match.
//
// Behavior:
//   - actor == target → ErrSelfLike; unknown target → ErrNotFound;
//     an existing like → ErrDuplicateLike. Nothing is written in those cases.
//   - The Like insert and the Match read-modify-write share one transaction;
//     the Match row is read with a row lock where the dialect has one.
//   - A missing Match row is created in canonical order with the actor's flag.
//   - is_match flips and matched_at is stamped exactly once, on the call that
//     raises the second flag; that call reports IsNewMatch = true.
//   - Losing a race on the pair (duplicate insert, deadlock, serialization
//     failure) rolls back and retries once, then surfaces ErrConflict.
func (e *Engine) RegisterLike(ctx context.Context, actorID, targetID uint64) (LikeResult, error) {
	log := logger.FromContext(ctx, e.appCtx.Logger).With("actor", actorID, "target", targetID)

	if actorID == targetID {
		return LikeResult{}, svcErr.ErrSelfLike
	}
	exists, err := e.users.Exists(ctx, targetID)
	if err != nil {
		return LikeResult{}, fmt.Errorf("lookup target: %w", err)
	}
	if !exists {
		return LikeResult{}, svcErr.ErrNotFound
	}

	var res LikeResult
	for attempt := 1; attempt <= maxLikeAttempts; attempt++ {
		res, err = e.registerLikeTx(ctx, actorID, targetID)
		if !errors.Is(err, errPairConflict) {
			break
		}
		log.Warn("like lost a race on the match row", "attempt", attempt, "err", err)
	}
	if errors.Is(err, errPairConflict) {
		return LikeResult{}, svcErr.ErrConflict
	}
	if err != nil {
		return LikeResult{}, err
	}

	e.invalidateLikedYou(ctx, actorID, targetID)

	if res.IsNewMatch {
		log.Info("new match", "match_id", res.MatchID)
	} else {
		log.Debug("like registered", "match_id", res.MatchID)
	}
	return res, nil
}

func (e *Engine) registerLikeTx(ctx context.Context, actorID, targetID uint64) (LikeResult, error) {
	var res LikeResult

	err := e.appCtx.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		likes := e.likes.WithTx(tx)
		matches := e.matches.WithTx(tx)

		dup, err := likes.Exists(ctx, actorID, targetID)
		if err != nil {
			return err
		}
		if dup {
			return svcErr.ErrDuplicateLike
		}
		if _, err := likes.Create(ctx, actorID, targetID); err != nil {
			return err
		}

		m, err := matches.FindPair(ctx, actorID, targetID, true)
		if err != nil {
			return conflictOr(err)
		}

		if m == nil {
			m = db.NewMatch(actorID, targetID)
			if err := matches.Create(ctx, m); err != nil {
				return conflictOr(err)
			}
			res.MatchID = m.ID
			return nil
		}

		m.SetLikes(actorID)
		res.IsNewMatch = m.Recompute(e.appCtx.Now())
		res.MatchID = m.ID
		return conflictOr(matches.SaveState(ctx, m))
	})

	return res, err
}

// Pass records that actor skipped target in discovery. It never undoes a
// like and never touches Match rows.
func (e *Engine) Pass(ctx context.Context, actorID, targetID uint64) error {
	if actorID == targetID {
		return svcErr.ErrSelfLike
	}
	exists, err := e.users.Exists(ctx, targetID)
	if err != nil {
		return fmt.Errorf("lookup target: %w", err)
	}
	if !exists {
		return svcErr.ErrNotFound
	}
	if err := e.likes.UpsertPass(ctx, actorID, targetID); err != nil {
		return fmt.Errorf("record pass: %w", err)
	}
	e.invalidateLikedYou(ctx, actorID)
	return nil
}

// ExcludedCandidates returns the ids actor has liked united with the ids
// actor is matched with (either slot), ascending and without duplicates.
func (e *Engine) ExcludedCandidates(ctx context.Context, actorID uint64) ([]uint64, error) {
	liked, err := e.likes.LikedIDs(ctx, actorID)
	if err != nil {
		return nil, fmt.Errorf("load likes: %w", err)
	}
	matched, err := e.matches.MatchedIDs(ctx, actorID)
	if err != nil {
		return nil, fmt.Errorf("load matches: %w", err)
	}

	out := append(liked, matched...)
	slices.Sort(out)
	return slices.Compact(out), nil
}

// conflictOr tags errors that mean "another transaction touched this pair
// first" so RegisterLike can retry; other errors pass through unchanged.
func conflictOr(err error) error {
	if err == nil {
		return nil
	}
	if isPairConflict(err) {
		return fmt.Errorf("%w: %w", errPairConflict, err)
	}
	return err
}

func isPairConflict(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		switch myErr.Number {
		case 1213, 1205: // deadlock, lock wait timeout
			return true
		}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "40001", "40P01": // serialization_failure, deadlock_detected
			return true
		}
	}
	return false
}
