package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/machine_admin/internal/services"
	"github.com/machine_admin/pkg/utils"
)

// LogHandler 操作日志与登录日志列表
type LogHandler struct {
	audit services.AuditService
}

// NewLogHandler 创建一个新的 LogHandler 实例
func NewLogHandler(audit services.AuditService) *LogHandler {
	return &LogHandler{audit: audit}
}

// OplogList godoc
// @Summary 操作日志列表
// @Tags log
// @Produce html
// @Param page path int true "页码，从 1 开始"
// @Success 200 {string} string "操作日志，每页 10 条"
// @Router /oplog/list/{page}/ [get]
func (h *LogHandler) OplogList(c *gin.Context) {
	page, ok := pageParam(c)
	if !ok {
		return
	}
	data, err := h.audit.ListOplogs(c.Request.Context(), page)
	if err != nil {
		utils.RespondInternalServerError(c, "加载操作日志失败", err)
		return
	}
	render(c, "oplog_list.html", gin.H{"Page": data, "ListURL": "/oplog/list/"})
}

// AdminloginlogList godoc
// @Summary 管理员登录日志列表
// @Tags log
// @Produce html
// @Param page path int true "页码，从 1 开始"
// @Success 200 {string} string "登录日志，每页 10 条"
// @Router /adminloginlog/list/{page}/ [get]
func (h *LogHandler) AdminloginlogList(c *gin.Context) {
	page, ok := pageParam(c)
	if !ok {
		return
	}
	data, err := h.audit.ListAdminlogs(c.Request.Context(), page)
	if err != nil {
		utils.RespondInternalServerError(c, "加载登录日志失败", err)
		return
	}
	render(c, "adminloginlog_list.html", gin.H{"Page": data, "ListURL": "/adminloginlog/list/"})
}
