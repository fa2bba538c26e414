package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/machine_admin/pkg/logger"
	"github.com/machine_admin/pkg/utils"
)

// Recovery 返回 panic 恢复中间件，记录堆栈并渲染 500 页面
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.L().Error("panic recovered",
					zap.Any("error", err),
					zap.String("path", c.Request.URL.Path),
					zap.String("method", c.Request.Method),
					zap.ByteString("stack", debug.Stack()),
				)
				utils.RespondErrorPage(c, http.StatusInternalServerError, "500", "服务器内部错误")
			}
		}()
		c.Next()
	}
}
