package main

import (
	"context"
	"flag"
	"log"

	"github.com/oggyb/muzz-dating/internal/app"
	"github.com/oggyb/muzz-dating/internal/cache"
	"github.com/oggyb/muzz-dating/internal/config"
	"github.com/oggyb/muzz-dating/internal/db"
	"github.com/oggyb/muzz-dating/internal/logger"
	"github.com/oggyb/muzz-dating/internal/seed"
)

func main() {
	minimal := flag.Bool("minimal", false, "seed the small deterministic data set")
	flag.Parse()

	// Load configuration
	cfg := config.New()
	logger.InitFromConfig(cfg)

	database, err := db.NewDB(cfg)
	if err != nil {
		log.Fatalf("failed to init db: %v", err)
	}
	defer db.Close(database)

	// counters are cached; seeding invalidates them as it goes
	redisCache := cache.NewRedisCache(cfg)
	if err := redisCache.Ping(context.Background()); err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}
	defer redisCache.Close()

	appCtx := app.New(cfg, database, redisCache, logger.L())

	run := seed.SeedTestData
	if *minimal {
		run = seed.SeedMinimalTestData
	}
	if err := run(context.Background(), appCtx); err != nil {
		log.Fatalf("failed to seed: %v", err)
	}

	log.Println("Seeding completed.")
}
