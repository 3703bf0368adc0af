package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/oggyb/muzz-dating/internal/db"
	svcErr "github.com/oggyb/muzz-dating/internal/errors"
	"github.com/oggyb/muzz-dating/internal/utils/pagination"
)

// MatchRepository provides data access for Match rows.
// Rows are written in canonical order (see db.CanonicalPair) but always
// looked up with both orderings.
type MatchRepository struct {
	db *gorm.DB
}

// NewMatchRepository creates a new repository bound to the given DB connection.
func NewMatchRepository(database *gorm.DB) *MatchRepository {
	return &MatchRepository{db: database}
}

// WithTx returns a copy of the repository running inside tx.
func (r *MatchRepository) WithTx(tx *gorm.DB) *MatchRepository {
	return &MatchRepository{db: tx}
}

// FindPair returns the Match row for the unordered pair {a, b}, or nil when
// the pair has no row yet.
//
// Behavior:
//   - Checks (user1=a, user2=b) and (user1=b, user2=a).
//   - forUpdate takes a row lock (SELECT ... FOR UPDATE) on dialects that
//     support it; call it inside a transaction.
func (r *MatchRepository) FindPair(ctx context.Context, a, b uint64, forUpdate bool) (*db.Match, error) {
	var m db.Match

	query := r.db.WithContext(ctx)
	if forUpdate {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	err := query.
		Where("(user1_id = ? AND user2_id = ?) OR (user1_id = ? AND user2_id = ?)", a, b, b, a).
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Create inserts a new Match row. A concurrent insert for the same pair
// surfaces as gorm.ErrDuplicatedKey (unique index idx_match_pair).
func (r *MatchRepository) Create(ctx context.Context, m *db.Match) error {
	return r.db.WithContext(ctx).Create(m).Error
}

// SaveState persists the flag, is_match and matched_at columns of m.
func (r *MatchRepository) SaveState(ctx context.Context, m *db.Match) error {
	return r.db.WithContext(ctx).
		Model(&db.Match{}).
		Where("id = ?", m.ID).
		Updates(map[string]any{
			"user1_likes": m.User1Likes,
			"user2_likes": m.User2Likes,
			"is_match":    m.IsMatch,
			"matched_at":  m.MatchedAt,
		}).Error
}

// MatchedIDs returns the counterparts userID is matched with, in either slot.
func (r *MatchRepository) MatchedIDs(ctx context.Context, userID uint64) ([]uint64, error) {
	var ids []uint64
	err := r.db.WithContext(ctx).
		Model(&db.Match{}).
		Select("CASE WHEN user1_id = ? THEN user2_id ELSE user1_id END", userID).
		Where("(user1_id = ? OR user2_id = ?) AND is_match = ?", userID, userID, true).
		Scan(&ids).Error
	return ids, err
}

// ListMatched returns confirmed matches of userID.
//
// Behavior:
//   - Only rows with is_match = true where userID occupies either slot.
//   - Ordered by matched_at DESC, id DESC.
//   - Supports cursor-based pagination via paginationToken.
//
// Example:
//
//	repo.ListMatched(ctx, 42, nil, 20) // newest 20 matches of user 42
func (r *MatchRepository) ListMatched(
	ctx context.Context,
	userID uint64,
	paginationToken *string,
	limit int,
) ([]db.Match, *string, error) {
	var matches []db.Match

	cursor, err := pagination.Decode(pagination.Token(paginationToken))
	if err != nil {
		return nil, nil, svcErr.Invalid("%s", err.Error())
	}

	query := r.db.WithContext(ctx).
		Where("(user1_id = ? OR user2_id = ?) AND is_match = ?", userID, userID, true).
		Order("matched_at DESC, id DESC").
		Limit(limit + 1)

	if !cursor.IsZero() {
		ts := cursor.At()
		query = query.Where(
			"(matched_at < ? OR (matched_at = ? AND id < ?))",
			ts, ts, cursor.ID,
		)
	}

	if err := query.Find(&matches).Error; err != nil {
		return nil, nil, err
	}

	matches, next := pagination.Page(matches, limit, func(m db.Match) (uint64, time.Time) {
		var at time.Time
		if m.MatchedAt != nil {
			at = *m.MatchedAt
		}
		return m.ID, at
	})
	return matches, next, nil
}
