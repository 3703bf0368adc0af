package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/oggyb/muzz-dating/internal/db"
	svcErr "github.com/oggyb/muzz-dating/internal/errors"
	"github.com/oggyb/muzz-dating/internal/utils/pagination"
)

// LikeRepository provides data access for the Like ledger and Pass decisions.
// Likes are append-only; passes are overwritten per (actor, target).
type LikeRepository struct {
	db *gorm.DB
}

// NewLikeRepository creates a new repository bound to the given DB connection.
func NewLikeRepository(database *gorm.DB) *LikeRepository {
	return &LikeRepository{db: database}
}

// WithTx returns a copy of the repository running inside tx.
func (r *LikeRepository) WithTx(tx *gorm.DB) *LikeRepository {
	return &LikeRepository{db: tx}
}

// Exists reports whether liker already liked liked.
func (r *LikeRepository) Exists(ctx context.Context, likerID, likedID uint64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db.Like{}).
		Where("liker_id = ? AND liked_id = ?", likerID, likedID).
		Count(&count).Error
	return count > 0, err
}

// Create appends a like. A second like for the same ordered pair fails
// with ErrDuplicateLike (unique index idx_like_pair).
func (r *LikeRepository) Create(ctx context.Context, likerID, likedID uint64) (*db.Like, error) {
	like := db.Like{LikerID: likerID, LikedID: likedID}
	if err := r.db.WithContext(ctx).Create(&like).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, svcErr.ErrDuplicateLike
		}
		return nil, fmt.Errorf("insert like: %w", err)
	}
	return &like, nil
}

// LikedIDs returns every user id liker has liked.
func (r *LikeRepository) LikedIDs(ctx context.Context, likerID uint64) ([]uint64, error) {
	var ids []uint64
	err := r.db.WithContext(ctx).
		Model(&db.Like{}).
		Where("liker_id = ?", likerID).
		Pluck("liked_id", &ids).Error
	return ids, err
}

// UpsertPass records that actor skipped target.
//
// Behavior:
//   - If (actor_id, target_id) exists → only updated_at moves.
//   - Otherwise a new row is inserted.
func (r *LikeRepository) UpsertPass(ctx context.Context, actorID, targetID uint64) error {
	pass := db.Pass{ActorID: actorID, TargetID: targetID}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "actor_id"}, {Name: "target_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"updated_at"}),
		}).
		Create(&pass).Error
}

// PassedIDs returns every user id actor has passed on.
func (r *LikeRepository) PassedIDs(ctx context.Context, actorID uint64) ([]uint64, error) {
	var ids []uint64
	err := r.db.WithContext(ctx).
		Model(&db.Pass{}).
		Where("actor_id = ?", actorID).
		Pluck("target_id", &ids).Error
	return ids, err
}

// GetPendingLikers returns likes received by recipient that are still
// waiting for an answer.
//
// Behavior:
//   - Only likes where liked_id = X are considered.
//   - Excludes likers the recipient already liked back (those are matches).
//   - Excludes likers the recipient explicitly passed.
//   - Ordered by created_at DESC, liker_id DESC.
//   - Supports cursor-based pagination via paginationToken.
//
// Example:
//
//	repo.GetPendingLikers(ctx, 42, nil, 20) // first 20 unanswered likes for user 42
func (r *LikeRepository) GetPendingLikers(
	ctx context.Context,
	recipientID uint64,
	paginationToken *string,
	limit int,
) ([]db.Like, *string, error) {
	var likes []db.Like

	cursor, err := pagination.Decode(pagination.Token(paginationToken))
	if err != nil {
		return nil, nil, svcErr.Invalid("%s", err.Error())
	}

	query := r.pendingLikers(ctx, recipientID).
		Select("l.*").
		Order("l.created_at DESC, l.liker_id DESC").
		Limit(limit + 1)

	// apply cursor
	if !cursor.IsZero() {
		ts := cursor.At()
		query = query.Where(
			"(l.created_at < ? OR (l.created_at = ? AND l.liker_id < ?))",
			ts, ts, cursor.ID,
		)
	}

	if err := query.Find(&likes).Error; err != nil {
		return nil, nil, err
	}

	likes, next := pagination.Page(likes, limit, func(l db.Like) (uint64, time.Time) {
		return l.LikerID, l.CreatedAt
	})
	return likes, next, nil
}

// CountPendingLikers returns how many likes GetPendingLikers would list.
// Used behind the Redis counter cache (DB is fallback).
func (r *LikeRepository) CountPendingLikers(ctx context.Context, recipientID uint64) (int64, error) {
	var count int64
	if err := r.pendingLikers(ctx, recipientID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *LikeRepository) pendingLikers(ctx context.Context, recipientID uint64) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("likes l").
		Where("l.liked_id = ?", recipientID).
		Where(`
			NOT EXISTS (
				SELECT 1 FROM likes l2
				WHERE l2.liker_id = l.liked_id
				  AND l2.liked_id = l.liker_id
			)`).
		Where(`
			NOT EXISTS (
				SELECT 1 FROM passes p
				WHERE p.actor_id = l.liked_id
				  AND p.target_id = l.liker_id
			)`)
}
