package db

import (
	"time"
)

// Gender and looking_for values accepted on profiles.
const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"

	LookingForEveryone = "everyone"
)

// User table
type User struct {
	ID           uint64    `gorm:"primaryKey;autoIncrement"`
	Email        string    `gorm:"uniqueIndex;size:128;not null"`
	PasswordHash string    `gorm:"size:255;not null"`
	Active       bool      `gorm:"default:true;index"`
	LastActiveAt time.Time
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`

	Profile *Profile `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// Profile is the public half of a user. One per user.
//
// Location fields and MaxDistance are stored but not used by matching.
// Interests keeps the user's ordering; see Interests for the lenient decoding.
type Profile struct {
	ID          uint64 `gorm:"primaryKey;autoIncrement"`
	UserID      uint64 `gorm:"uniqueIndex;not null"`
	Name        string `gorm:"size:100;not null"`
	Age         int    `gorm:"not null;index"`
	Gender      string `gorm:"size:20;not null;index"`
	LookingFor  string `gorm:"size:20;not null;default:everyone"`
	City        string `gorm:"size:100"`
	Latitude    *float64
	Longitude   *float64
	Bio         string `gorm:"type:text"`
	Occupation  string `gorm:"size:100"`
	Photo1      string `gorm:"size:500"`
	Photo2      string `gorm:"size:500"`
	Photo3      string `gorm:"size:500"`
	MinAge      int    `gorm:"not null;default:18"`
	MaxAge      int    `gorm:"not null;default:99"`
	MaxDistance int    `gorm:"not null;default:100"`
	Interests   Interests
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

// Photos returns the non-empty photo references in slot order.
func (p *Profile) Photos() []string {
	var out []string
	for _, ref := range []string{p.Photo1, p.Photo2, p.Photo3} {
		if ref != "" {
			out = append(out, ref)
		}
	}
	return out
}

// SetPhotos fills the photo slots in order. Callers validate the length.
func (p *Profile) SetPhotos(refs []string) {
	slots := []*string{&p.Photo1, &p.Photo2, &p.Photo3}
	for i, slot := range slots {
		*slot = ""
		if i < len(refs) {
			*slot = refs[i]
		}
	}
}

// Like is a one-directional expression of interest, liker -> liked.
//
// Unique index idx_like_pair(liker_id, liked_id) guarantees one row per
// ordered pair; idx_liked_created backs the "liked you" feed pagination.
type Like struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	LikerID   uint64    `gorm:"not null;uniqueIndex:idx_like_pair,priority:1"`
	LikedID   uint64    `gorm:"not null;uniqueIndex:idx_like_pair,priority:2;index:idx_liked_created,priority:1"`
	CreatedAt time.Time `gorm:"autoCreateTime;index:idx_liked_created,priority:2,sort:desc"`
}

// Pass records that an actor skipped a target in discovery.
//
// Composite PK: (ActorID, TargetID) - repeated passes overwrite.
type Pass struct {
	ActorID   uint64    `gorm:"primaryKey"`
	TargetID  uint64    `gorm:"primaryKey"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// Match is the undirected relationship between two users.
//
// The pair is stored canonically: User1ID is always the smaller id, so the
// unique index idx_match_pair(user1_id, user2_id) covers the unordered pair.
// IsMatch is true exactly when both flags are; MatchedAt is stamped once,
// at that transition.
type Match struct {
	ID         uint64    `gorm:"primaryKey;autoIncrement"`
	User1ID    uint64    `gorm:"not null;uniqueIndex:idx_match_pair,priority:1"`
	User2ID    uint64    `gorm:"not null;uniqueIndex:idx_match_pair,priority:2;index"`
	User1Likes bool      `gorm:"not null;default:false"`
	User2Likes bool      `gorm:"not null;default:false"`
	IsMatch    bool      `gorm:"not null;default:false;index"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
	MatchedAt  *time.Time
}

// CanonicalPair orders two user ids the way Match rows store them.
func CanonicalPair(a, b uint64) (uint64, uint64) {
	if a <= b {
		return a, b
	}
	return b, a
}

// NewMatch builds an unsaved, canonically ordered row for a first like.
func NewMatch(liker, liked uint64) *Match {
	u1, u2 := CanonicalPair(liker, liked)
	m := &Match{User1ID: u1, User2ID: u2}
	m.SetLikes(liker)
	return m
}

// Involves reports whether userID occupies either slot.
func (m *Match) Involves(userID uint64) bool {
	return m.User1ID == userID || m.User2ID == userID
}

// Other returns the counterpart of userID.
func (m *Match) Other(userID uint64) uint64 {
	if m.User1ID == userID {
		return m.User2ID
	}
	return m.User1ID
}

// SetLikes raises the flag of whichever slot userID occupies.
func (m *Match) SetLikes(userID uint64) {
	if m.User1ID == userID {
		m.User1Likes = true
	}
	if m.User2ID == userID {
		m.User2Likes = true
	}
}

// Recompute derives IsMatch from the flags and reports whether this call
// performed the false -> true transition.
func (m *Match) Recompute(now time.Time) bool {
	if m.IsMatch || !(m.User1Likes && m.User2Likes) {
		return false
	}
	m.IsMatch = true
	m.MatchedAt = &now
	return true
}

// Message is a directed chat line between two matched users.
//
// Indexes:
//   - idx_receiver_read(receiver_id, is_read) backs unread counts.
//   - idx_thread(sender_id, receiver_id, created_at) backs thread reads.
type Message struct {
	ID         uint64    `gorm:"primaryKey;autoIncrement"`
	SenderID   uint64    `gorm:"not null;index:idx_thread,priority:1"`
	ReceiverID uint64    `gorm:"not null;index:idx_thread,priority:2;index:idx_receiver_read,priority:1"`
	Content    string    `gorm:"type:text;not null"`
	CreatedAt  time.Time `gorm:"autoCreateTime;index:idx_thread,priority:3"`
	IsRead     bool      `gorm:"not null;default:false;index:idx_receiver_read,priority:2"`
	ReadAt     *time.Time
}
