package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/machine_admin/internal/metrics"
)

// Metrics 记录 HTTP 请求计数与耗时
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		// 未匹配到路由时不使用原始路径，避免标签基数过大
		if path == "" {
			path = "unmatched"
		}
		metrics.RecordHTTPRequest(c.Request.Method, path, strconv.Itoa(c.Writer.Status()), time.Since(start).Seconds())
	}
}
