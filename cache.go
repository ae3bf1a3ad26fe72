package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const upcomingCacheTTL = 30 * time.Second

// ConnectRedis opens the optional Redis cache. When REDIS_ADDR is unset
// the service runs without caching and every upcoming-events read hits
// the database.
func ConnectRedis() *redis.Client {
	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		return nil
	}

	redisPassword := os.Getenv("REDIS_PASSWORD")

	redisDBStr := os.Getenv("REDIS_DB")
	redisDB, err := strconv.Atoi(redisDBStr)
	if err != nil || redisDBStr == "" {
		redisDB = 0
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPassword,
		DB:       redisDB,
	})

	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	log.Println("Redis connection successfully opened.")
	return rdb
}

func upcomingCacheKey(limit int) string {
	return fmt.Sprintf("cache:upcoming_events:%d", limit)
}

// cachedUpcoming returns the cached upcoming list for this limit, or
// ok=false on miss, cache disabled, or any Redis error (reads always
// fall through to the database).
func (app *App) cachedUpcoming(ctx context.Context, limit int) ([]Event, bool) {
	if app.Cache == nil {
		return nil, false
	}

	data, err := app.Cache.Get(ctx, upcomingCacheKey(limit)).Bytes()
	if err != nil {
		return nil, false
	}

	var events []Event
	if err := json.Unmarshal(data, &events); err != nil {
		return nil, false
	}
	return events, true
}

func (app *App) storeUpcoming(ctx context.Context, limit int, events []Event) {
	if app.Cache == nil {
		return
	}

	data, err := json.Marshal(events)
	if err != nil {
		return
	}
	if err := app.Cache.Set(ctx, upcomingCacheKey(limit), data, upcomingCacheTTL).Err(); err != nil {
		log.Printf("Error setting upcoming-events cache in Redis: %v", err)
	}
}

// invalidateUpcoming drops every cached upcoming list after an event is
// created or deleted.
func (app *App) invalidateUpcoming(ctx context.Context) {
	if app.Cache == nil {
		return
	}

	iter := app.Cache.Scan(ctx, 0, "cache:upcoming_events:*", 0).Iterator()
	for iter.Next(ctx) {
		if err := app.Cache.Del(ctx, iter.Val()).Err(); err != nil {
			log.Printf("Error invalidating upcoming-events cache: %v", err)
		}
	}
}
