// Package testutil wires in-memory collaborators (SQLite through gorm,
// miniredis) for package tests.
package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/oggyb/muzz-dating/internal/app"
	"github.com/oggyb/muzz-dating/internal/cache"
	"github.com/oggyb/muzz-dating/internal/config"
	"github.com/oggyb/muzz-dating/internal/db"
	applog "github.com/oggyb/muzz-dating/internal/logger"
)

var dbSeq atomic.Int64

// Env bundles an AppContext with handles on its fakes.
type Env struct {
	App   *app.AppContext
	DB    *gorm.DB
	Redis *miniredis.Miniredis
}

// NewDB opens an isolated in-memory SQLite database with the schema applied.
//
// The pool is capped at one connection: concurrent transactions queue on
// the pool instead of failing with "database is locked".
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", dbSeq.Add(1))
	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		NowFunc:                func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) },
		Logger:                 logger.Discard,
		TranslateError:         true,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	sqlDB, err := database.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.Migrate(database))
	return database
}

// NewEnv spins up SQLite + miniredis and wires them into an AppContext.
// Each test gets its own isolated DB + Redis.
func NewEnv(t *testing.T) *Env {
	t.Helper()

	database := NewDB(t)

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(func() { mr.Close() })

	cfg := config.New()
	cfg.App.ENV = "test"
	cfg.Redis.Addr = mr.Addr()
	cfg.JWT.Secret = "test-secret"

	redisCache := cache.NewRedisCache(cfg)
	t.Cleanup(func() { redisCache.Close() })

	appCtx := app.New(cfg, database, redisCache, applog.Discard())
	appCtx.Now = func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) }

	return &Env{App: appCtx, DB: database, Redis: mr}
}

// CreateUser inserts an active user with a placeholder password hash.
func CreateUser(t *testing.T, gdb *gorm.DB, email string) *db.User {
	t.Helper()
	u := db.User{Email: email, PasswordHash: "x", Active: true, LastActiveAt: time.Now().UTC()}
	require.NoError(t, gdb.Create(&u).Error)
	return &u
}

// CreateProfile inserts a complete profile for userID; opts tweak fields
// before insert.
func CreateProfile(t *testing.T, gdb *gorm.DB, userID uint64, opts ...func(*db.Profile)) *db.Profile {
	t.Helper()
	p := db.Profile{
		UserID:      userID,
		Name:        fmt.Sprintf("user%d", userID),
		Age:         30,
		Gender:      db.GenderFemale,
		LookingFor:  db.LookingForEveryone,
		MinAge:      18,
		MaxAge:      99,
		MaxDistance: 100,
		Interests:   db.Interests{},
	}
	for _, opt := range opts {
		opt(&p)
	}
	require.NoError(t, gdb.Create(&p).Error)
	return &p
}

// CreateMatch inserts a confirmed match between a and b directly.
func CreateMatch(t *testing.T, gdb *gorm.DB, a, b uint64) *db.Match {
	t.Helper()
	now := time.Now().UTC().Truncate(time.Millisecond)
	m := db.NewMatch(a, b)
	m.SetLikes(b)
	m.Recompute(now)
	require.NoError(t, gdb.Create(m).Error)
	require.NoError(t, gdb.Create(&db.Like{LikerID: a, LikedID: b}).Error)
	require.NoError(t, gdb.Create(&db.Like{LikerID: b, LikedID: a}).Error)
	return m
}
