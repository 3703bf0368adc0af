package conversation_test

import (
	"context"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/oggyb/muzz-dating/internal/db"
	svcErr "github.com/oggyb/muzz-dating/internal/errors"
	"github.com/oggyb/muzz-dating/internal/service/conversation"
	"github.com/oggyb/muzz-dating/internal/service/matching"
	"github.com/oggyb/muzz-dating/internal/testutil"
)

type fixture struct {
	env  *testutil.Env
	gate *conversation.Gate
	a, b *db.User
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	env := testutil.NewEnv(t)
	a := testutil.CreateUser(t, env.DB, "a@test.com")
	b := testutil.CreateUser(t, env.DB, "b@test.com")
	testutil.CreateMatch(t, env.DB, a.ID, b.ID)
	return &fixture{env: env, gate: conversation.NewGate(env.App), a: a, b: b}
}

func TestAuthorizeConversation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	engine := matching.NewEngine(f.env.App)

	m, err := f.gate.AuthorizeConversation(ctx, f.b.ID, f.a.ID)
	require.NoError(t, err)
	assert.True(t, m.IsMatch)

	c := testutil.CreateUser(t, f.env.DB, "c@test.com")
	_, err = f.gate.AuthorizeConversation(ctx, f.a.ID, c.ID)
	assert.ErrorIs(t, err, svcErr.ErrNotMatched, "no row")

	_, err = engine.RegisterLike(ctx, f.a.ID, c.ID)
	require.NoError(t, err)
	_, err = f.gate.AuthorizeConversation(ctx, c.ID, f.a.ID)
	assert.ErrorIs(t, err, svcErr.ErrNotMatched, "one-sided row")

	_, err = f.gate.AuthorizeConversation(ctx, f.a.ID, f.a.ID)
	assert.ErrorIs(t, err, svcErr.ErrNotMatched)
}

func TestSendMessage_RequiresMatch(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	stranger := testutil.CreateUser(t, f.env.DB, "s@test.com")

	_, err := f.gate.SendMessage(ctx, f.a.ID, stranger.ID, "hi")
	assert.ErrorIs(t, err, svcErr.ErrNotMatched)

	// the gate runs before content validation
	_, err = f.gate.SendMessage(ctx, f.a.ID, stranger.ID, "   ")
	assert.ErrorIs(t, err, svcErr.ErrNotMatched)

	var n int64
	f.env.DB.Model(&db.Message{}).Count(&n)
	assert.Zero(t, n)
}

func TestSendMessage_ContentRules(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	tests := []struct {
		name    string
		content string
		want    string
		err     error
	}{
		{name: "plain", content: "hello there", want: "hello there"},
		{name: "trimmed", content: "  hey  \n", want: "hey"},
		{name: "empty", content: "", err: svcErr.ErrEmptyMessage},
		{name: "whitespace", content: " \t\n ", err: svcErr.ErrEmptyMessage},
		{name: "markup stripped", content: "<b>bold</b> move", want: "bold move"},
		{name: "only markup", content: "<script></script>", err: svcErr.ErrEmptyMessage},
		{name: "stored as plain text", content: "Tom & Jerry say 5 < 6 <b>hi</b>", want: "Tom & Jerry say 5 < 6 hi"},
		{name: "encoded markup stripped", content: "&lt;script&gt;alert(1)&lt;/script&gt;ok", want: "ok"},
		{name: "max length never grows", content: strings.Repeat("&", conversation.MaxMessageLength), want: strings.Repeat("&", conversation.MaxMessageLength)},
		{name: "exactly max", content: strings.Repeat("a", conversation.MaxMessageLength), want: strings.Repeat("a", conversation.MaxMessageLength)},
		{name: "too long", content: strings.Repeat("a", conversation.MaxMessageLength+1), err: svcErr.ErrMessageTooLong},
		{name: "multibyte counts runes", content: strings.Repeat("é", conversation.MaxMessageLength), want: strings.Repeat("é", conversation.MaxMessageLength)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, err := f.gate.SendMessage(ctx, f.a.ID, f.b.ID, tt.content)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, msg.Content)
			assert.LessOrEqual(t, utf8.RuneCountInString(msg.Content), conversation.MaxMessageLength)
			assert.False(t, msg.IsRead)
			assert.Nil(t, msg.ReadAt)
		})
	}
}

func TestSendOpenAndUnreadCount(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	unread, err := f.gate.UnreadCount(ctx, f.b.ID)
	require.NoError(t, err)
	assert.Zero(t, unread)

	_, err = f.gate.SendMessage(ctx, f.a.ID, f.b.ID, "one")
	require.NoError(t, err)
	_, err = f.gate.SendMessage(ctx, f.a.ID, f.b.ID, "two")
	require.NoError(t, err)
	_, err = f.gate.SendMessage(ctx, f.b.ID, f.a.ID, "reply")
	require.NoError(t, err)

	// the cached zero from above must not survive a send
	unread, err = f.gate.UnreadCount(ctx, f.b.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), unread)

	thread, err := f.gate.OpenConversation(ctx, f.b.ID, f.a.ID)
	require.NoError(t, err)
	require.Len(t, thread, 3)
	assert.Equal(t, []string{"one", "two", "reply"}, []string{thread[0].Content, thread[1].Content, thread[2].Content})
	for _, m := range thread[:2] {
		assert.True(t, m.IsRead)
		assert.NotNil(t, m.ReadAt)
	}
	assert.False(t, thread[2].IsRead, "b's own message stays unread for a")

	unread, err = f.gate.UnreadCount(ctx, f.b.ID)
	require.NoError(t, err)
	assert.Zero(t, unread)

	unread, err = f.gate.UnreadCount(ctx, f.a.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), unread)
}

func TestOpenConversationIsIdempotent(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.gate.SendMessage(ctx, f.a.ID, f.b.ID, "hi")
	require.NoError(t, err)

	first, err := f.gate.OpenConversation(ctx, f.b.ID, f.a.ID)
	require.NoError(t, err)
	require.Len(t, first, 1)
	require.NotNil(t, first[0].ReadAt)

	second, err := f.gate.OpenConversation(ctx, f.b.ID, f.a.ID)
	require.NoError(t, err)
	require.Len(t, second, 1)
	assert.True(t, second[0].IsRead)
	assert.True(t, first[0].ReadAt.Equal(*second[0].ReadAt), "read_at is stamped once")

	stranger := testutil.CreateUser(t, f.env.DB, "s@test.com")
	_, err = f.gate.OpenConversation(ctx, stranger.ID, f.a.ID)
	assert.ErrorIs(t, err, svcErr.ErrNotMatched)
}

func TestUnreadCountUsesCache(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.gate.SendMessage(ctx, f.a.ID, f.b.ID, "hi")
	require.NoError(t, err)

	n, err := f.gate.UnreadCount(ctx, f.b.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	key := f.env.App.RedisCache.KeyForUnreadCount(f.b.ID)
	require.True(t, f.env.Redis.Exists(key))

	// a value planted in the cache wins until invalidated
	require.NoError(t, f.env.Redis.Set(key, "7"))
	n, err = f.gate.UnreadCount(ctx, f.b.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(7), n)

	_, err = f.gate.OpenConversation(ctx, f.b.ID, f.a.ID)
	require.NoError(t, err)
	assert.False(t, f.env.Redis.Exists(key))
}

// openDuringUnreadCount makes user open the thread with counterpart right
// after the next unread count query has read the DB, before the result is cached.
func openDuringUnreadCount(t *testing.T, f *fixture, user, counterpart uint64) *bool {
	t.Helper()
	fired := new(bool)
	err := f.env.DB.Callback().Query().After("gorm:query").Register("test:open_during_unread_count", func(tx *gorm.DB) {
		if *fired || tx.Statement.Table != "messages" || !strings.Contains(tx.Statement.SQL.String(), "count(") {
			return
		}
		*fired = true
		_, err := f.gate.OpenConversation(tx.Statement.Context, user, counterpart)
		require.NoError(t, err)
	})
	require.NoError(t, err)
	return fired
}

func TestUnreadCount_OpenDuringCountIsNotCached(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.gate.SendMessage(ctx, f.a.ID, f.b.ID, "hi")
	require.NoError(t, err)

	fired := openDuringUnreadCount(t, f, f.b.ID, f.a.ID)
	n, err := f.gate.UnreadCount(ctx, f.b.ID)
	require.NoError(t, err)
	require.True(t, *fired)
	assert.Equal(t, int64(1), n, "counted before the thread was opened")

	var unread int64
	require.NoError(t, f.env.DB.Model(&db.Message{}).Where("receiver_id = ? AND is_read = ?", f.b.ID, false).Count(&unread).Error)
	require.Zero(t, unread)

	for i := 0; i < 3; i++ {
		n, err = f.gate.UnreadCount(ctx, f.b.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(0), n)
	}
	cached, err := f.env.Redis.Get(f.env.App.RedisCache.KeyForUnreadCount(f.b.ID))
	require.NoError(t, err)
	assert.Equal(t, "0", cached)
}

func TestUnreadCount_SendAfterCachingInvalidates(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	n, err := f.gate.UnreadCount(ctx, f.b.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)

	_, err = f.gate.SendMessage(ctx, f.a.ID, f.b.ID, "one")
	require.NoError(t, err)
	_, err = f.gate.SendMessage(ctx, f.a.ID, f.b.ID, "two")
	require.NoError(t, err)

	n, err = f.gate.UnreadCount(ctx, f.b.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestListConversations(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	c := testutil.CreateUser(t, f.env.DB, "c@test.com")
	testutil.CreateProfile(t, f.env.DB, c.ID)
	testutil.CreateMatch(t, f.env.DB, f.a.ID, c.ID)

	_, err := f.gate.SendMessage(ctx, f.b.ID, f.a.ID, "from b")
	require.NoError(t, err)
	_, err = f.gate.SendMessage(ctx, f.a.ID, c.ID, "to c")
	require.NoError(t, err)
	_, err = f.gate.SendMessage(ctx, c.ID, f.a.ID, "from c")
	require.NoError(t, err)

	got, err := f.gate.ListConversations(ctx, f.a.ID)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, c.ID, got[0].CounterpartID)
	require.NotNil(t, got[0].LastMessage)
	assert.Equal(t, "from c", got[0].LastMessage.Content)
	assert.Equal(t, int64(1), got[0].UnreadCount)
	assert.NotNil(t, got[0].Profile)

	assert.Equal(t, f.b.ID, got[1].CounterpartID)
	assert.Equal(t, int64(1), got[1].UnreadCount)
	assert.Nil(t, got[1].Profile)

	empty, err := f.gate.ListConversations(ctx, 9999)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
