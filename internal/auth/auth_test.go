package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oggyb/muzz-dating/internal/auth"
	"github.com/oggyb/muzz-dating/internal/config"
	svcErr "github.com/oggyb/muzz-dating/internal/errors"
)

func jwtConfig(secret string, ttl time.Duration) *config.Config {
	cfg := &config.Config{}
	cfg.JWT.Secret = secret
	cfg.JWT.Issuer = "muzz-dating-test"
	cfg.JWT.AccessTTL = ttl
	return cfg
}

func TestIssueAndParse(t *testing.T) {
	issuer := auth.NewIssuer(jwtConfig("s3cret", time.Hour))

	tok, err := issuer.Issue(42)
	require.NoError(t, err)
	assert.NotEmpty(t, tok.Value)
	assert.WithinDuration(t, time.Now().Add(time.Hour), tok.ExpiresAt, time.Minute)

	id, err := issuer.Parse(tok.Value)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), id)
}

func TestParseRejects(t *testing.T) {
	issuer := auth.NewIssuer(jwtConfig("s3cret", time.Hour))

	other, err := auth.NewIssuer(jwtConfig("different", time.Hour)).Issue(1)
	require.NoError(t, err)
	expired, err := auth.NewIssuer(jwtConfig("s3cret", -time.Minute)).Issue(1)
	require.NoError(t, err)

	for name, token := range map[string]string{
		"garbage":      "not.a.token",
		"wrong secret": other.Value,
		"expired":      expired.Value,
		"empty":        "",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := issuer.Parse(token)
			assert.ErrorIs(t, err, svcErr.ErrUnauthenticated)
		})
	}
}

func TestBearerToken(t *testing.T) {
	tok, err := auth.BearerToken("Bearer abc.def")
	require.NoError(t, err)
	assert.Equal(t, "abc.def", tok)

	tok, err = auth.BearerToken("bearer   xyz ")
	require.NoError(t, err)
	assert.Equal(t, "xyz", tok)

	for _, h := range []string{"", "Bearer", "Bearer ", "Basic abc", "abc"} {
		_, err := auth.BearerToken(h)
		assert.ErrorIs(t, err, svcErr.ErrUnauthenticated, h)
	}
}

func TestActorContext(t *testing.T) {
	_, err := auth.ActorFrom(context.Background())
	assert.ErrorIs(t, err, svcErr.ErrUnauthenticated)

	id, err := auth.ActorFrom(auth.WithActor(context.Background(), 7))
	require.NoError(t, err)
	assert.Equal(t, uint64(7), id)
}

func TestPasswords(t *testing.T) {
	_, err := auth.HashPassword("short")
	assert.ErrorIs(t, err, auth.ErrWeakPassword)

	hash, err := auth.HashPassword("correct horse")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse", hash)

	assert.True(t, auth.CheckPassword(hash, "correct horse"))
	assert.False(t, auth.CheckPassword(hash, "wrong horse"))
	assert.False(t, auth.CheckPassword("not-a-hash", "correct horse"))
}
