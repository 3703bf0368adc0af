package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/oggyb/muzz-dating/internal/db"
)

// DiscoveryFilters narrows the candidate pool for one viewer.
type DiscoveryFilters struct {
	ViewerID     uint64
	ViewerGender string
	LookingFor   string // male | female | everyone
	MinAge       int
	MaxAge       int
	ExcludeIDs   []uint64 // already liked or matched
	SkipPassed   bool
}

// DiscoveryRepository selects discovery candidates.
// Ranking is not its job: it returns the eligible ids and the caller samples.
type DiscoveryRepository struct {
	db *gorm.DB
}

func NewDiscoveryRepository(database *gorm.DB) *DiscoveryRepository {
	return &DiscoveryRepository{db: database}
}

// CandidateIDs returns the user ids of every profile eligible for the viewer.
//
// Behavior:
//   - Only active users that have a profile; never the viewer.
//   - Age within [MinAge, MaxAge] of the viewer's preferences.
//   - Candidate gender must match the viewer's looking_for (unless everyone),
//     and the candidate's looking_for must accept the viewer's gender.
//   - ExcludeIDs and, with SkipPassed, users the viewer passed are dropped.
func (r *DiscoveryRepository) CandidateIDs(ctx context.Context, f DiscoveryFilters) ([]uint64, error) {
	query := r.db.WithContext(ctx).
		Model(&db.Profile{}).
		Joins("JOIN users u ON u.id = profiles.user_id AND u.active = ?", true).
		Where("profiles.user_id <> ?", f.ViewerID).
		Where("profiles.age BETWEEN ? AND ?", f.MinAge, f.MaxAge).
		Where("(profiles.looking_for = ? OR profiles.looking_for = ?)", db.LookingForEveryone, f.ViewerGender)

	if f.LookingFor != "" && f.LookingFor != db.LookingForEveryone {
		query = query.Where("profiles.gender = ?", f.LookingFor)
	}
	if len(f.ExcludeIDs) > 0 {
		query = query.Where("profiles.user_id NOT IN ?", f.ExcludeIDs)
	}
	if f.SkipPassed {
		query = query.Where(`
			NOT EXISTS (
				SELECT 1 FROM passes p
				WHERE p.actor_id = ?
				  AND p.target_id = profiles.user_id
			)`, f.ViewerID)
	}

	var ids []uint64
	if err := query.Order("profiles.user_id").Pluck("profiles.user_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}
