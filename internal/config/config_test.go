package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNew_Defaults(t *testing.T) {
	for _, k := range []string{"APP_ENV", "SEED_ON_START", "DB_DRIVER", "MYSQL_DSN", "DISCOVERY_LIMIT", "CORS_ALLOWED_ORIGINS", "JWT_ACCESS_TTL", "DB_HOST", "DB_PORT", "DB_NAME", "CACHE_LIKES_TTL"} {
		t.Setenv(k, "")
	}

	cfg := New()

	assert.Equal(t, "development", cfg.App.ENV)
	assert.True(t, cfg.App.Seed)
	assert.Equal(t, "mysql", cfg.DB.Driver)
	assert.Contains(t, cfg.DB.DSN, "@tcp(localhost:3306)/dating?parseTime=true")
	assert.Equal(t, 10, cfg.Discovery.Limit)
	assert.Equal(t, []string{"*"}, cfg.HTTP.AllowedOrigins)
	assert.Equal(t, 24*time.Hour, cfg.JWT.AccessTTL)
	assert.Equal(t, time.Hour, cfg.Cache.LikesTTL)
}

func TestNew_Overrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("SEED_ON_START", "")
	t.Setenv("DB_DRIVER", "Postgres")
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/dating")
	t.Setenv("DISCOVERY_LIMIT", "25")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("JWT_ACCESS_TTL", "15m")
	t.Setenv("CACHE_UNREAD_TTL", "not-a-duration")

	cfg := New()

	assert.False(t, cfg.App.Seed)
	assert.Equal(t, "postgres", cfg.DB.Driver)
	assert.Equal(t, "postgresql://u:p@db:5432/dating", cfg.DB.DSN)
	assert.Equal(t, 25, cfg.Discovery.Limit)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.HTTP.AllowedOrigins)
	assert.Equal(t, 15*time.Minute, cfg.JWT.AccessTTL)
	assert.Equal(t, 30*time.Second, cfg.Cache.UnreadTTL)
}

func TestIsTruthy(t *testing.T) {
	for _, v := range []string{"1", "true", "YES", " on "} {
		assert.True(t, isTruthy(v), v)
	}
	for _, v := range []string{"", "0", "false", "nope"} {
		assert.False(t, isTruthy(v), v)
	}
}
