package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorPage 错误页模板数据
type ErrorPage struct {
	Status  int
	Title   string
	Message string
}

// errorTemplate 错误页使用的模板名
const errorTemplate = "error.html"

// RespondErrorPage 渲染错误页并中止后续处理
func RespondErrorPage(c *gin.Context, status int, title, message string) {
	c.HTML(status, errorTemplate, gin.H{
		"Error": ErrorPage{Status: status, Title: title, Message: message},
	})
	c.Abort()
}

// RespondNotFoundError 发送资源未找到页面。
// 权限校验失败同样使用该响应，避免暴露接口是否存在。
func RespondNotFoundError(c *gin.Context, resourceName ...string) {
	msg := "页面不存在"
	if len(resourceName) > 0 && resourceName[0] != "" {
		msg = resourceName[0] + "未找到"
	}
	RespondErrorPage(c, http.StatusNotFound, "404", msg)
}

// RespondInternalServerError 发送服务器内部错误页面
// err 会记录到 gin 上下文中，由日志中间件统一输出
func RespondInternalServerError(c *gin.Context, message string, err error) {
	if err != nil {
		_ = c.Error(err)
	}
	RespondErrorPage(c, http.StatusInternalServerError, "500", message)
}

// RedirectTo 发送 302 跳转
func RedirectTo(c *gin.Context, location string) {
	c.Redirect(http.StatusFound, location)
	c.Abort()
}
