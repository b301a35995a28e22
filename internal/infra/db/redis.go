package db

import (
	"context"
	"time"

	"foodpreorder/internal/config"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis はredisに接続して疎通確認まで行う。
func ConnectRedis(cfg config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return client, nil
}
