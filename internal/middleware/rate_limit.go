package middleware

import (
	"net/http"
	"sync"
	"time"

	"fotoshare-server/internal/config"
	"fotoshare-server/internal/service"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type IPRateLimiter struct {
	ips sync.Map
	mu  sync.Mutex
	r   rate.Limit
	b   int
}

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func NewIPRateLimiter(r rate.Limit, b int) *IPRateLimiter {
	i := &IPRateLimiter{
		r: r,
		b: b,
	}

	go i.cleanupLoop()

	return i
}

func (i *IPRateLimiter) getLimiter(ip string) *rate.Limiter {
	if v, ok := i.ips.Load(ip); ok {
		c := v.(*client)
		c.lastSeen = time.Now()
		return c.limiter
	}

	i.mu.Lock()
	defer i.mu.Unlock()

	// Double check
	if v, ok := i.ips.Load(ip); ok {
		c := v.(*client)
		c.lastSeen = time.Now()
		return c.limiter
	}

	limiter := rate.NewLimiter(i.r, i.b)
	i.ips.Store(ip, &client{limiter: limiter, lastSeen: time.Now()})

	return limiter
}

func (i *IPRateLimiter) cleanupLoop() {
	for {
		time.Sleep(1 * time.Minute)
		i.ips.Range(func(key, value interface{}) bool {
			client := value.(*client)
			if time.Since(client.lastSeen) > 3*time.Minute {
				i.ips.Delete(key)
			}
			return true
		})
	}
}

// allowRedis 使用 Redis 计数器限流（多实例部署时共享额度）。
// 窗口为 1 秒，额度为 burst。Redis 故障时放行，由内存限流兜底。
func allowRedis(c *gin.Context, name, ip string, burst int) bool {
	rdb := service.GetRedisClient()
	if rdb == nil {
		return true
	}
	key := service.RedisKey("rate", name, ip)
	count, err := rdb.Incr(c.Request.Context(), key).Result()
	if err != nil {
		return true
	}
	if count == 1 {
		_ = rdb.Expire(c.Request.Context(), key, time.Second).Err()
	}
	return count <= int64(burst)
}

// RateLimitMiddleware 创建按 IP 限流的中间件。
// name 用于区分不同限流域（auth/upload），rps/burst 取自配置。
func RateLimitMiddleware(name string, rps float64, burst int) gin.HandlerFunc {
	var limiter *IPRateLimiter
	var once sync.Once

	return func(c *gin.Context) {
		if !config.Get().RateLimit.Enabled {
			c.Next()
			return
		}

		once.Do(func() {
			limiter = NewIPRateLimiter(rate.Limit(rps), burst)
		})

		ip := c.ClientIP()

		if !allowRedis(c, name, ip, burst) || !limiter.getLimiter(ip).Allow() {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "请求过于频繁，请稍后再试"})
			c.Abort()
			return
		}
		c.Next()
	}
}
