package storage

import (
	"os"

	"holiday-homes-server/utils"

	"github.com/go-redis/redis/v8"
)

var Redis *redis.Client

func InitializeRedis() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "localhost:6379"
		utils.Log.Warn().Msg("REDIS_URL not set, using localhost:6379 (development mode)")
	}

	Redis = redis.NewClient(&redis.Options{
		Addr:     redisURL,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	utils.Log.Info().Str("addr", redisURL).Msg("redis initialized")
}
