// Package conversation implements messaging between matched users.
//
// Every read or write of a Message goes through AuthorizeConversation: two
// users may exchange messages only while a confirmed Match exists between
// them.
package conversation

import (
	"context"
	"fmt"
	"html"
	"strings"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
	"gorm.io/gorm"

	"github.com/oggyb/muzz-dating/internal/app"
	"github.com/oggyb/muzz-dating/internal/db"
	svcErr "github.com/oggyb/muzz-dating/internal/errors"
	"github.com/oggyb/muzz-dating/internal/logger"
	"github.com/oggyb/muzz-dating/internal/repository"
)

// MaxMessageLength is the longest accepted message, in characters.
const MaxMessageLength = 1000

// Gate guards and serves conversations.
type Gate struct {
	appCtx   *app.AppContext
	users    *repository.UserRepository
	matches  *repository.MatchRepository
	messages *repository.MessageRepository
	policy   *bluemonday.Policy
}

// NewGate creates a Conversation Gate on top of the AppContext store.
func NewGate(appCtx *app.AppContext) *Gate {
	return &Gate{
		appCtx:   appCtx,
		users:    repository.NewUserRepository(appCtx.DB),
		matches:  repository.NewMatchRepository(appCtx.DB),
		messages: repository.NewMessageRepository(appCtx.DB),
		policy:   bluemonday.StrictPolicy(),
	}
}

// AuthorizeConversation returns the confirmed Match between actor and
// counterpart, or ErrNotMatched when there is none.
func (g *Gate) AuthorizeConversation(ctx context.Context, actorID, counterpartID uint64) (*db.Match, error) {
	if actorID == counterpartID {
		return nil, svcErr.ErrNotMatched
	}
	m, err := g.matches.FindPair(ctx, actorID, counterpartID, false)
	if err != nil {
		return nil, fmt.Errorf("lookup match: %w", err)
	}
	if m == nil || !m.IsMatch {
		return nil, svcErr.ErrNotMatched
	}
	return m, nil
}

// SendMessage stores a message from sender to receiver.
//
// Behavior:
//   - Fails with ErrNotMatched before looking at the content.
//   - Content is trimmed; empty → ErrEmptyMessage, more than
//     MaxMessageLength characters → ErrMessageTooLong.
//   - Markup is stripped and entities decoded, so content is stored as plain
//     text; content that sanitizes to nothing → ErrEmptyMessage.
//   - The message is stored unread and the receiver's unread counter is dropped.
func (g *Gate) SendMessage(ctx context.Context, senderID, receiverID uint64, content string) (*db.Message, error) {
	if _, err := g.AuthorizeConversation(ctx, senderID, receiverID); err != nil {
		return nil, err
	}

	clean, err := g.sanitize(content)
	if err != nil {
		return nil, err
	}

	msg := &db.Message{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Content:    clean,
		CreatedAt:  g.appCtx.Now(),
	}
	if err := g.messages.Create(ctx, msg); err != nil {
		return nil, fmt.Errorf("store message: %w", err)
	}

	g.invalidateUnread(ctx, receiverID)
	logger.FromContext(ctx, g.appCtx.Logger).Debug("message sent", "sender", senderID, "receiver", receiverID, "message_id", msg.ID)
	return msg, nil
}

func (g *Gate) sanitize(content string) (string, error) {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return "", svcErr.ErrEmptyMessage
	}
	if utf8.RuneCountInString(trimmed) > MaxMessageLength {
		return "", svcErr.ErrMessageTooLong
	}
	clean := strings.TrimSpace(g.plainText(trimmed))
	if clean == "" {
		return "", svcErr.ErrEmptyMessage
	}
	return clean, nil
}

// plainText strips tags and decodes entities until the text stops shrinking.
// Entity-encoded markup is stripped on a later round, so the result holds
// no tags and is never longer than s.
func (g *Gate) plainText(s string) string {
	for {
		next := html.UnescapeString(g.policy.Sanitize(s))
		if len(next) >= len(s) {
			return next
		}
		s = next
	}
}

// OpenConversation marks every unread message from counterpart to actor as
// read and returns the whole thread, oldest first. Opening an already-read
// thread changes nothing.
func (g *Gate) OpenConversation(ctx context.Context, actorID, counterpartID uint64) ([]db.Message, error) {
	if _, err := g.AuthorizeConversation(ctx, actorID, counterpartID); err != nil {
		return nil, err
	}

	var (
		thread []db.Message
		marked int64
	)
	err := g.appCtx.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		messages := g.messages.WithTx(tx)

		n, err := messages.MarkThreadRead(ctx, actorID, counterpartID, g.appCtx.Now())
		if err != nil {
			return fmt.Errorf("mark read: %w", err)
		}
		marked = n

		thread, err = messages.Thread(ctx, actorID, counterpartID)
		if err != nil {
			return fmt.Errorf("load thread: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	g.invalidateUnread(ctx, actorID)
	logger.FromContext(ctx, g.appCtx.Logger).Debug("conversation opened", "actor", actorID, "counterpart", counterpartID, "marked_read", marked)
	return thread, nil
}

// UnreadCount returns the number of unread messages addressed to actor
// across all conversations.
// Cache-first strategy:
//  1. Attempts to read from Redis (messages:unread:userID).
//  2. If cache miss or parse error, falls back to DB.
//  3. The DB count is cached with the configured TTL unless a send or an
//     open invalidated the counter while it was being read.
func (g *Gate) UnreadCount(ctx context.Context, actorID uint64) (int64, error) {
	rc := g.appCtx.RedisCache
	ttl := g.appCtx.Config.Cache.UnreadTTL

	count, err := rc.CountOrLoad(ctx, rc.KeyForUnreadCount(actorID), ttl, func(ctx context.Context) (int64, error) {
		return g.messages.CountUnread(ctx, actorID)
	})
	if err != nil {
		return 0, fmt.Errorf("count unread: %w", err)
	}
	return count, nil
}

// Summary is one entry of the conversations list.
type Summary struct {
	CounterpartID uint64
	Profile       *db.Profile
	LastMessage   *db.Message
	UnreadCount   int64
}

// ListConversations returns one Summary per counterpart the actor has
// exchanged messages with, most recently active first. Threads whose match
// no longer holds are skipped.
func (g *Gate) ListConversations(ctx context.Context, actorID uint64) ([]Summary, error) {
	rows, err := g.messages.Conversations(ctx, actorID)
	if err != nil {
		return nil, fmt.Errorf("list conversations: %w", err)
	}
	if len(rows) == 0 {
		return []Summary{}, nil
	}

	counterparts := make([]uint64, 0, len(rows))
	lastIDs := make([]uint64, 0, len(rows))
	for _, r := range rows {
		counterparts = append(counterparts, r.CounterpartID)
		lastIDs = append(lastIDs, r.LastMessageID)
	}

	profiles, err := g.users.ProfilesByUserIDs(ctx, counterparts)
	if err != nil {
		return nil, fmt.Errorf("load profiles: %w", err)
	}
	last, err := g.messages.ByIDs(ctx, lastIDs)
	if err != nil {
		return nil, fmt.Errorf("load last messages: %w", err)
	}
	lastByID := make(map[uint64]db.Message, len(last))
	for _, m := range last {
		lastByID[m.ID] = m
	}

	matched, err := g.matches.MatchedIDs(ctx, actorID)
	if err != nil {
		return nil, fmt.Errorf("load matches: %w", err)
	}
	allowed := make(map[uint64]struct{}, len(matched))
	for _, id := range matched {
		allowed[id] = struct{}{}
	}

	out := make([]Summary, 0, len(rows))
	for _, r := range rows {
		if _, ok := allowed[r.CounterpartID]; !ok {
			continue
		}
		s := Summary{CounterpartID: r.CounterpartID, UnreadCount: r.UnreadCount}
		if p, ok := profiles[r.CounterpartID]; ok {
			s.Profile = &p
		}
		if m, ok := lastByID[r.LastMessageID]; ok {
			s.LastMessage = &m
		}
		out = append(out, s)
	}
	return out, nil
}

func (g *Gate) invalidateUnread(ctx context.Context, userID uint64) {
	rc := g.appCtx.RedisCache
	if err := rc.InvalidateCount(ctx, rc.KeyForUnreadCount(userID)); err != nil {
		logger.FromContext(ctx, g.appCtx.Logger).Warn("failed to invalidate unread counter", "user", userID, "err", err)
	}
}
