package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/machine_admin/internal/auth"
	"github.com/machine_admin/internal/services"
	"github.com/machine_admin/pkg/utils"
)

// FlashCookieName 一次性提示消息的 Cookie 名
const FlashCookieName = "admin_flash"

// 提示消息类别
const (
	FlashOK  = "ok"
	FlashErr = "err"
)

// Flash 一次性提示消息
type Flash struct {
	Category string
	Message  string
}

const cookieSecureKey = "cookie_secure"

// CookieSecurity 记录提示消息 Cookie 是否带 Secure 标记，与会话 Cookie 保持一致
func CookieSecurity(secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(cookieSecureKey, secure)
		c.Next()
	}
}

// SetFlash 写入提示消息，下一次渲染页面时显示并清除
func SetFlash(c *gin.Context, category, message string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(FlashCookieName, category+"|"+message, 60, "/", "", c.GetBool(cookieSecureKey), true)
}

// popFlash 读取并清除提示消息
func popFlash(c *gin.Context) *Flash {
	raw, err := c.Cookie(FlashCookieName)
	if err != nil || raw == "" {
		return nil
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(FlashCookieName, "", -1, "/", "", c.GetBool(cookieSecureKey), true)
	category, message, ok := strings.Cut(raw, "|")
	if !ok || (category != FlashOK && category != FlashErr) {
		return nil
	}
	return &Flash{Category: category, Message: message}
}

// render 渲染页面模板，并补充各页面共用的数据
func render(c *gin.Context, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	if s, ok := auth.CurrentAdmin(c); ok {
		data["Admin"] = s.Admin
	}
	if _, ok := data["Flash"]; !ok {
		data["Flash"] = popFlash(c)
	}
	data["OnlineTime"] = time.Now().Format("2006-01-02 15:04:05")
	if _, ok := data["Errors"]; !ok {
		data["Errors"] = map[string]string{}
	}
	c.HTML(http.StatusOK, name, data)
}

// actor 当前请求的操作人
func actor(c *gin.Context) services.Actor {
	a := services.Actor{IP: c.ClientIP()}
	if s, ok := auth.CurrentAdmin(c); ok {
		a.AdminID = s.AdminID
		a.Name = s.Admin
	}
	return a
}

// positiveParam 解析路径中的正整数参数，失败时返回 404 页面
func positiveParam(c *gin.Context, name string) (int64, bool) {
	raw := c.Param(name)
	if !utils.IsNumeric(raw) {
		utils.RespondNotFoundError(c)
		return 0, false
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v < 1 {
		utils.RespondNotFoundError(c)
		return 0, false
	}
	return v, true
}

// pageParam 解析 :page 参数
func pageParam(c *gin.Context) (int, bool) {
	v, ok := positiveParam(c, "page")
	if !ok {
		return 0, false
	}
	if v > 1<<31-1 {
		utils.RespondNotFoundError(c)
		return 0, false
	}
	return int(v), true
}

// idParam 解析 :id 参数
func idParam(c *gin.Context) (int64, bool) {
	return positiveParam(c, "id")
}

// respondServiceError 处理服务层返回的非校验类错误
func respondServiceError(c *gin.Context, resource string, err error) {
	if errors.Is(err, services.ErrNotFound) {
		utils.RespondNotFoundError(c, resource)
		return
	}
	utils.RespondInternalServerError(c, "服务器内部错误", err)
}
