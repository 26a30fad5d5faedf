package adapter

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/ai/port"
	cacheport "github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/cache/port"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/metrics"
)

// CachedTransformer memoises transformations keyed by model, message and context.
type CachedTransformer struct {
	next   port.Transformer
	cache  cacheport.Cache
	model  string
	ttl    time.Duration
	logger *zap.Logger
}

func NewCachedTransformer(next port.Transformer, cache cacheport.Cache, model string, ttl time.Duration, logger *zap.Logger) *CachedTransformer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CachedTransformer{next: next, cache: cache, model: model, ttl: ttl, logger: logger}
}

var _ port.Transformer = (*CachedTransformer)(nil)

func (c *CachedTransformer) Transform(ctx context.Context, req port.TransformRequest) (port.Transformation, error) {
	key := c.key(req)
	if raw, err := c.cache.Get(ctx, key); err == nil {
		var out port.Transformation
		if json.Unmarshal([]byte(raw), &out) == nil {
			metrics.AICacheHit("transform")
			return out, nil
		}
	} else if !errors.Is(err, cacheport.ErrMiss) {
		c.logger.Warn("ai: transform cache read failed", zap.Error(err))
	}

	out, err := c.next.Transform(ctx, req)
	if err != nil {
		return port.Transformation{}, err
	}
	if b, err := json.Marshal(out); err == nil {
		if err := c.cache.Set(ctx, key, string(b), c.ttl); err != nil {
			c.logger.Warn("ai: transform cache write failed", zap.Error(err))
		}
	}
	return out, nil
}

func (c *CachedTransformer) key(req port.TransformRequest) string {
	h := sha256.New()
	h.Write([]byte(c.model))
	h.Write([]byte{0})
	h.Write([]byte(req.Message))
	h.Write([]byte{0})
	h.Write([]byte(req.Context))
	return "transform:" + hex.EncodeToString(h.Sum(nil))
}
