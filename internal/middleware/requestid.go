package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader 请求 ID 的响应头
const RequestIDHeader = "X-Request-ID"

// RequestIDKey 请求 ID 在 gin 上下文中的 key
const RequestIDKey = "request_id"

// RequestID 为每个请求分配一个 UUID v7；客户端已携带 X-Request-ID 时沿用该值
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.Must(uuid.NewV7()).String()
		}
		c.Header(RequestIDHeader, id)
		c.Set(RequestIDKey, id)
		c.Next()
	}
}

// GetRequestID 返回当前请求的 ID，没有时返回空字符串
func GetRequestID(c *gin.Context) string {
	return c.GetString(RequestIDKey)
}
