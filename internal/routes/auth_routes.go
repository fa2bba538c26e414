package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/machine_admin/internal/handlers"
	"github.com/machine_admin/internal/middleware"
)

// SetupAuthRoutes 设置无需登录的路由，登录提交按客户端 IP 限流
func SetupAuthRoutes(router *gin.Engine, h *handlers.AuthHandler, loginRateLimit int) {
	router.GET("/login/", h.LoginPage)
	router.POST("/login/", middleware.RateLimitByIP(loginRateLimit), h.Login)
}
