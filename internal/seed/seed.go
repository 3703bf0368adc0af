// Package seed fills a database with demo users, profiles, likes, matches
// and messages. Likes go through the Match Engine and messages through the
// Conversation Gate, so seeded data obeys the same invariants as live data.
package seed

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"gorm.io/gorm"

	"github.com/oggyb/muzz-dating/internal/app"
	"github.com/oggyb/muzz-dating/internal/auth"
	"github.com/oggyb/muzz-dating/internal/db"
	svcErr "github.com/oggyb/muzz-dating/internal/errors"
	"github.com/oggyb/muzz-dating/internal/service/conversation"
	"github.com/oggyb/muzz-dating/internal/service/matching"
)

// DemoPassword is the password of every seeded user.
const DemoPassword = "password123"

// tables in delete order.
var tables = []string{"messages", "matches", "likes", "passes", "profiles", "users"}

var (
	cities    = []string{"London", "Manchester", "Bristol", "Leeds", "Glasgow"}
	interests = []string{"hiking", "jazz", "cooking", "climbing", "films", "travel", "running", "books", "gaming", "art"}
	openers   = []string{"Hey! How's your week going?", "Love your photos :)", "Coffee sometime?", "What are you reading at the moment?"}
)

// SeedTestData resets the database and populates it with demo data.
//
// Behavior:
//  1. Clears every dating table and resets id sequences where supported.
//  2. Creates 20 users (10 male, 10 female) with profiles and hashed passwords.
//  3. Each user likes ~12 others of the opposite gender (~70% like, rest pass);
//     every 3rd pair is made mutual, which creates a match.
//  4. Some matches get a short message exchange.
func SeedTestData(ctx context.Context, appCtx *app.AppContext) error {
	r := rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	log := appCtx.Logger

	if err := reset(appCtx.DB); err != nil {
		return err
	}
	log.Info("cleared existing data")

	hash, err := auth.HashPassword(DemoPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	// --- users + profiles ---
	genders := map[uint64]string{}
	ids := make([]uint64, 0, 20)
	for i := 1; i <= 20; i++ {
		gender := db.GenderMale
		if i > 10 {
			gender = db.GenderFemale
		}
		u, err := createUser(appCtx.DB, fmt.Sprintf("user%d@example.com", i), hash, time.Now().Add(-time.Duration(r.IntN(500))*time.Hour))
		if err != nil {
			return err
		}
		p := &db.Profile{
			UserID:      u.ID,
			Name:        fmt.Sprintf("User %d", i),
			Age:         21 + r.IntN(20),
			Gender:      gender,
			LookingFor:  db.LookingForEveryone,
			City:        cities[r.IntN(len(cities))],
			Bio:         "Seeded demo profile.",
			MinAge:      18,
			MaxAge:      99,
			MaxDistance: 100,
			Interests:   pick(r, interests, 3),
		}
		p.SetPhotos([]string{fmt.Sprintf("https://example.com/photos/%d.jpg", i)})
		if err := appCtx.DB.Create(p).Error; err != nil {
			return fmt.Errorf("failed to seed profile: %w", err)
		}
		genders[u.ID] = gender
		ids = append(ids, u.ID)
	}
	log.Info("seeded users", "count", len(ids))

	// --- likes / passes ---
	engine := matching.NewEngine(appCtx)
	gate := conversation.NewGate(appCtx)

	var likes, passes, matches int
	counter := 0
	for _, actorID := range ids {
		for j := 0; j < 12; j++ { // each user decides on ~12 others
			targetID := ids[r.IntN(len(ids))]
			if targetID == actorID || genders[actorID] == genders[targetID] {
				continue
			}

			// like probability 70%; every 3rd pair is guaranteed mutual
			liked := r.IntN(100) < 70 || counter%3 == 0
			if !liked {
				if err := engine.Pass(ctx, actorID, targetID); err != nil {
					return fmt.Errorf("failed to seed pass: %w", err)
				}
				passes++
				counter++
				continue
			}

			pair := [][2]uint64{{actorID, targetID}}
			if counter%3 == 0 {
				pair = append(pair, [2]uint64{targetID, actorID})
			}
			for _, p := range pair {
				res, err := engine.RegisterLike(ctx, p[0], p[1])
				if errors.Is(err, svcErr.ErrDuplicateLike) {
					continue
				}
				if err != nil {
					return fmt.Errorf("failed to seed like: %w", err)
				}
				likes++
				if res.IsNewMatch {
					matches++
					if r.IntN(2) == 0 {
						if err := chat(ctx, gate, r, p[0], p[1]); err != nil {
							return err
						}
					}
				}
			}
			counter++
		}
	}

	log.Info("seeded interactions", "likes", likes, "passes", passes, "matches", matches)
	return nil
}

// SeedMinimalTestData creates a tiny deterministic data set:
// user1 ↔ user2 matched with one unread message, user3 → user1 pending,
// user1 passed user3.
func SeedMinimalTestData(ctx context.Context, appCtx *app.AppContext) error {
	if err := reset(appCtx.DB); err != nil {
		return err
	}

	hash, err := auth.HashPassword(DemoPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	specs := []struct {
		email, name, gender string
	}{
		{"u1@test.com", "User One", db.GenderMale},
		{"u2@test.com", "User Two", db.GenderFemale},
		{"u3@test.com", "User Three", db.GenderFemale},
	}
	ids := make([]uint64, 0, len(specs))
	for _, s := range specs {
		u, err := createUser(appCtx.DB, s.email, hash, time.Now())
		if err != nil {
			return err
		}
		p := &db.Profile{
			UserID: u.ID, Name: s.name, Age: 30, Gender: s.gender,
			LookingFor: db.LookingForEveryone, MinAge: 18, MaxAge: 99, MaxDistance: 100,
			Interests: db.Interests{},
		}
		if err := appCtx.DB.Create(p).Error; err != nil {
			return fmt.Errorf("failed to seed profile: %w", err)
		}
		ids = append(ids, u.ID)
	}

	engine := matching.NewEngine(appCtx)
	steps := []func() error{
		func() error { _, err := engine.RegisterLike(ctx, ids[0], ids[1]); return err }, // user1 → user2
		func() error { _, err := engine.RegisterLike(ctx, ids[1], ids[0]); return err }, // user2 → user1 → mutual
		func() error { _, err := engine.RegisterLike(ctx, ids[2], ids[0]); return err }, // user3 → user1, pending
		func() error { return engine.Pass(ctx, ids[0], ids[2]) },                        // user1 passes user3
		func() error {
			_, err := conversation.NewGate(appCtx).SendMessage(ctx, ids[1], ids[0], "Hi there!")
			return err
		},
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}

func createUser(gdb *gorm.DB, email, hash string, lastActive time.Time) (*db.User, error) {
	u := &db.User{Email: email, PasswordHash: hash, Active: true, LastActiveAt: lastActive.UTC()}
	if err := gdb.Create(u).Error; err != nil {
		return nil, fmt.Errorf("failed to seed user: %w", err)
	}
	return u, nil
}

func chat(ctx context.Context, gate *conversation.Gate, r *rand.Rand, a, b uint64) error {
	if _, err := gate.SendMessage(ctx, a, b, openers[r.IntN(len(openers))]); err != nil {
		return fmt.Errorf("failed to seed message: %w", err)
	}
	if _, err := gate.SendMessage(ctx, b, a, "Hi! Nice to match with you."); err != nil {
		return fmt.Errorf("failed to seed message: %w", err)
	}
	return nil
}

func pick(r *rand.Rand, from []string, n int) db.Interests {
	idx := r.Perm(len(from))
	out := make(db.Interests, 0, n)
	for _, i := range idx[:n] {
		out = append(out, from[i])
	}
	return out
}

// reset clears all dating tables and restarts id sequences.
func reset(gdb *gorm.DB) error {
	for _, t := range tables {
		if err := gdb.Exec("DELETE FROM " + t).Error; err != nil {
			return fmt.Errorf("failed to clear %s: %w", t, err)
		}
	}

	// passes has a composite key and no sequence
	for _, t := range tables {
		if t == "passes" {
			continue
		}
		switch gdb.Dialector.Name() {
		case "mysql":
			gdb.Exec("ALTER TABLE " + t + " AUTO_INCREMENT = 1")
		case "postgres":
			gdb.Exec("ALTER SEQUENCE " + t + "_id_seq RESTART WITH 1")
		case "sqlite":
			gdb.Exec("DELETE FROM sqlite_sequence WHERE name = ?", t)
		}
	}
	return nil
}
