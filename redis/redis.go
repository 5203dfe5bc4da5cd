package redis

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"

	"github.com/campusmentor/booking-portal/config"
)

var (
	Client *redis.Client
	Ctx    = context.Background()
)

// Init connects the optional student-directory cache. The service runs fine
// without it: credential sign-in just hits the backend directory every time.
func Init() {
	addr := config.RedisAddr()
	if addr == "" {
		log.Println("REDIS_ADDR not set, student directory cache disabled")
		return
	}

	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   0,
	})
	if _, err := client.Ping(Ctx).Result(); err != nil {
		log.Printf("Failed to connect to Redis, cache disabled: %v", err)
		return
	}

	Client = client
	log.Println("✅ Connected to Redis")
}

// Enabled reports whether the cache is available.
func Enabled() bool {
	return Client != nil
}
