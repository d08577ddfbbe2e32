package database

import (
	"context"
	"net"
	"time"

	"go-gin-calendar/config"

	"github.com/redis/go-redis/v9"
)

// redisPingTimeout 測試環境沒有 Redis 時要能快速失敗
const redisPingTimeout = 3 * time.Second

// InitRedis 建立分析快取與清理佇列共用的連線
func InitRedis(cfg *config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:        net.JoinHostPort(cfg.Host, cfg.Port),
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: redisPingTimeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}
