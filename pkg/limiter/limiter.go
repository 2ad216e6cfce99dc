// Package limiter provides token-bucket rate limiting keyed by request path.
// Package limiter 提供按请求路径维度的令牌桶限流
package limiter

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/juju/ratelimit"
)

// Face is the limiter interface consumed by the middleware layer.
type Face interface {
	// Key derives the bucket key from the request
	// Key 从请求中提取桶的键
	Key(c *gin.Context) string
	GetBucket(key string) (*ratelimit.Bucket, bool)
	AddBuckets(rules ...BucketRule) Face
}

// BucketRule describes one token bucket.
// BucketRule 描述一个令牌桶
type BucketRule struct {
	// Key 桶的键，这里为路由前缀
	Key string
	// FillInterval 放令牌的间隔
	FillInterval time.Duration
	// Capacity 桶容量
	Capacity int64
	// Quantum 每次放的令牌数
	Quantum int64
}

type Limiter struct {
	limiterBuckets map[string]*ratelimit.Bucket
}
