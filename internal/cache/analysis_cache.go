package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// AnalysisCache 以圖片內容雜湊為 key 快取辨識結果原文
type AnalysisCache interface {
	// 讀取：不存在時 ok=false
	Get(ctx context.Context, imageHash string) (raw string, ok bool, err error)
	// 寫入：ttl<=0 表示不過期
	Set(ctx context.Context, imageHash string, raw string, ttl time.Duration) error
}

type RedisAnalysisCacheImpl struct {
	client *redis.Client
}

func NewRedisAnalysisCache(client *redis.Client) AnalysisCache {
	return &RedisAnalysisCacheImpl{
		client: client,
	}
}

// 分析結果 key
func (c *RedisAnalysisCacheImpl) getKey(imageHash string) string {
	return fmt.Sprintf("analysis:%s", imageHash)
}

func (c *RedisAnalysisCacheImpl) Get(ctx context.Context, imageHash string) (string, bool, error) {
	val, err := c.client.Get(ctx, c.getKey(imageHash)).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

func (c *RedisAnalysisCacheImpl) Set(ctx context.Context, imageHash string, raw string, ttl time.Duration) error {
	if ttl < 0 {
		ttl = 0
	}
	return c.client.Set(ctx, c.getKey(imageHash), raw, ttl).Err()
}
