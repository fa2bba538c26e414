package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-chi/httprate"
)

type clientIPKey struct{}

// RateLimitByIP 按客户端 IP 限制每分钟请求数，超出时返回 429。
// 客户端 IP 取 c.ClientIP()，受 TrustedProxies 配置约束。requestsPerMinute <= 0 时不限流。
func RateLimitByIP(requestsPerMinute int) gin.HandlerFunc {
	if requestsPerMinute <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	limiter := httprate.Limit(
		requestsPerMinute,
		time.Minute,
		httprate.WithKeyFuncs(func(r *http.Request) (string, error) {
			ip, _ := r.Context().Value(clientIPKey{}).(string)
			return ip, nil
		}),
	)

	return func(c *gin.Context) {
		passed := false
		next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { passed = true })
		r := c.Request.WithContext(context.WithValue(c.Request.Context(), clientIPKey{}, c.ClientIP()))
		limiter(next).ServeHTTP(c.Writer, r)
		if !passed {
			c.Abort()
			return
		}
		c.Next()
	}
}
