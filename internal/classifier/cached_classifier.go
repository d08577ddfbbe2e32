package classifier

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"go-gin-calendar/internal/cache"
	"go-gin-calendar/pkg/logger"

	"go.uber.org/zap"
)

// CachedClassifierImpl 相同圖片不重複呼叫外部 API
type CachedClassifierImpl struct {
	inner ImageClassifier
	cache cache.AnalysisCache
	ttl   time.Duration
}

func NewCachedClassifier(inner ImageClassifier, analysisCache cache.AnalysisCache, ttl time.Duration) ImageClassifier {
	return &CachedClassifierImpl{inner: inner, cache: analysisCache, ttl: ttl}
}

func (c *CachedClassifierImpl) Analyze(ctx context.Context, image []byte, mediaType string) (string, error) {
	log := logger.WithComponent("classifier")
	key := ImageHash(image)

	raw, ok, err := c.cache.Get(ctx, key)
	if err != nil {
		// 快取失敗不影響請求
		log.Warn("analysis cache get failed", zap.String("image_hash", key), zap.Error(err))
	} else if ok {
		log.Debug("analysis cache hit", zap.String("image_hash", key))
		return raw, nil
	}

	raw, err = c.inner.Analyze(ctx, image, mediaType)
	if err != nil {
		return "", err
	}

	// 只快取通過驗證的回應
	if _, perr := ParseExtraction(raw); perr == nil {
		if err := c.cache.Set(ctx, key, raw, c.ttl); err != nil {
			log.Warn("analysis cache set failed", zap.String("image_hash", key), zap.Error(err))
		}
	}
	return raw, nil
}

// ImageHash 圖片內容的 SHA-256 (hex)
func ImageHash(image []byte) string {
	sum := sha256.Sum256(image)
	return hex.EncodeToString(sum[:])
}
