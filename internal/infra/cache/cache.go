package cache

import (
	"github.com/gentle-app/gentle-api/internal/config"
	"github.com/redis/go-redis/v9"
)

// New builds a Redis client from cfg.Redis.
func New(cfg *config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		PoolSize: cfg.Redis.PoolSize,
	})
}
