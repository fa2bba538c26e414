package auth

import (
	"context"
	"errors"
	"net/url"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/machine_admin/internal/services"
	"github.com/machine_admin/pkg/logger"
	"github.com/machine_admin/pkg/utils"
)

// LoginPath 登录页地址
const LoginPath = "/login/"

// LoginURL 返回带 next 参数的登录页地址
func LoginURL(next string) string {
	if next == "" || next == "/" {
		return LoginPath
	}
	return LoginPath + "?next=" + url.QueryEscape(next)
}

// SessionVersions 查询管理员当前的会话版本
type SessionVersions interface {
	SessionVersion(ctx context.Context, adminID int64) (int, error)
}

// SessionRequired 是一个Gin中间件，用于校验会话 Cookie。
// 会话缺失、无效、过期、已登出或签发后修改过密码时跳转到登录页，并把原请求地址作为 next 参数保留。
func SessionRequired(sessions *SessionManager, denylist Denylist, versions SessionVersions) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookieName)
		if err != nil || token == "" {
			utils.RedirectTo(c, LoginURL(c.Request.URL.RequestURI()))
			return
		}

		s, err := sessions.Parse(token)
		if err != nil {
			logger.L().Debug("会话校验失败", zap.Error(err))
			sessions.ClearCookie(c)
			utils.RedirectTo(c, LoginURL(c.Request.URL.RequestURI()))
			return
		}

		revoked, err := denylist.Contains(c.Request.Context(), s.JTI)
		if err != nil {
			// 拒绝列表不可用时按未登录处理
			logger.L().Error("查询会话拒绝列表失败", zap.Error(err))
			utils.RedirectTo(c, LoginURL(c.Request.URL.RequestURI()))
			return
		}
		if revoked {
			sessions.ClearCookie(c)
			utils.RedirectTo(c, LoginURL(c.Request.URL.RequestURI()))
			return
		}

		version, err := versions.SessionVersion(c.Request.Context(), s.AdminID)
		if err != nil && !errors.Is(err, services.ErrNotFound) {
			logger.L().Error("查询会话版本失败", zap.Int64("admin_id", s.AdminID), zap.Error(err))
			utils.RedirectTo(c, LoginURL(c.Request.URL.RequestURI()))
			return
		}
		// 管理员已不存在或密码已修改
		if err != nil || version != s.Version {
			sessions.ClearCookie(c)
			utils.RedirectTo(c, LoginURL(c.Request.URL.RequestURI()))
			return
		}

		// 将会话信息存储在Gin上下文中，以便后续处理程序使用
		setSession(c, s)
		c.Next()
	}
}

// Logout 吊销当前会话直到其原过期时间，并清除 Cookie
func Logout(c *gin.Context, sessions *SessionManager, denylist Denylist) error {
	defer sessions.ClearCookie(c)
	s, ok := CurrentAdmin(c)
	if !ok || s.JTI == "" {
		return nil
	}
	return denylist.Add(c.Request.Context(), s.JTI, s.ExpiresAt)
}
