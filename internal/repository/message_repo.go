package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/oggyb/muzz-dating/internal/db"
)

// MessageRepository provides data access for chat messages.
// Messages are never deleted; only is_read/read_at are ever updated.
type MessageRepository struct {
	db *gorm.DB
}

// ConversationRow summarises one thread from the point of view of a user.
type ConversationRow struct {
	CounterpartID uint64
	LastMessageID uint64
	UnreadCount   int64
}

// NewMessageRepository creates a new repository bound to the given DB connection.
func NewMessageRepository(database *gorm.DB) *MessageRepository {
	return &MessageRepository{db: database}
}

// WithTx returns a copy of the repository running inside tx.
func (r *MessageRepository) WithTx(tx *gorm.DB) *MessageRepository {
	return &MessageRepository{db: tx}
}

// Create persists msg as unread.
func (r *MessageRepository) Create(ctx context.Context, msg *db.Message) error {
	msg.IsRead = false
	msg.ReadAt = nil
	return r.db.WithContext(ctx).Create(msg).Error
}

// MarkThreadRead flips every unread message sender -> reader to read.
// Returns how many rows changed; 0 on an already-read thread.
func (r *MessageRepository) MarkThreadRead(ctx context.Context, readerID, senderID uint64, at time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&db.Message{}).
		Where("sender_id = ? AND receiver_id = ? AND is_read = ?", senderID, readerID, false).
		Updates(map[string]any{"is_read": true, "read_at": at})
	return res.RowsAffected, res.Error
}

// Thread returns every message exchanged between a and b.
//
// Ordered by created_at ASC, id ASC: timestamps can tie, the
// auto-increment id keeps insertion order stable.
func (r *MessageRepository) Thread(ctx context.Context, a, b uint64) ([]db.Message, error) {
	var msgs []db.Message
	err := r.db.WithContext(ctx).
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)", a, b, b, a).
		Order("created_at ASC, id ASC").
		Find(&msgs).Error
	return msgs, err
}

// CountUnread counts unread messages addressed to receiverID, all threads.
func (r *MessageRepository) CountUnread(ctx context.Context, receiverID uint64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db.Message{}).
		Where("receiver_id = ? AND is_read = ?", receiverID, false).
		Count(&count).Error
	return count, err
}

// Conversations lists one row per counterpart userID has exchanged messages
// with, most recently active thread first.
func (r *MessageRepository) Conversations(ctx context.Context, userID uint64) ([]ConversationRow, error) {
	var rows []ConversationRow
	err := r.db.WithContext(ctx).
		Model(&db.Message{}).
		Select(`
			CASE WHEN sender_id = ? THEN receiver_id ELSE sender_id END AS counterpart_id,
			MAX(id) AS last_message_id,
			SUM(CASE WHEN receiver_id = ? AND is_read = ? THEN 1 ELSE 0 END) AS unread_count`,
			userID, userID, false).
		Where("sender_id = ? OR receiver_id = ?", userID, userID).
		Group("counterpart_id").
		Order("last_message_id DESC").
		Scan(&rows).Error
	return rows, err
}

// ByIDs loads messages by primary key.
func (r *MessageRepository) ByIDs(ctx context.Context, ids []uint64) ([]db.Message, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var msgs []db.Message
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&msgs).Error
	return msgs, err
}
