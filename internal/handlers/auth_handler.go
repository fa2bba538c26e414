package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/machine_admin/internal/auth"
	"github.com/machine_admin/internal/services"
	"github.com/machine_admin/pkg/logger"
	"github.com/machine_admin/pkg/utils"
)

// AuthHandler 封装了登录、登出、首页与修改密码的 HTTP 处理逻辑
type AuthHandler struct {
	auth     services.AuthService
	admins   services.AdminService
	sessions *auth.SessionManager
	denylist auth.Denylist
}

// NewAuthHandler 创建一个新的 AuthHandler 实例
func NewAuthHandler(authService services.AuthService, admins services.AdminService, sessions *auth.SessionManager, denylist auth.Denylist) *AuthHandler {
	return &AuthHandler{auth: authService, admins: admins, sessions: sessions, denylist: denylist}
}

// LoginForm 登录表单
type LoginForm struct {
	Account string `form:"account" binding:"required,max=100"`
	Pwd     string `form:"pwd" binding:"required,max=100"`
}

// PwdForm 修改密码表单
type PwdForm struct {
	OldPwd string `form:"old_pwd" binding:"required,max=100"`
	NewPwd string `form:"new_pwd" binding:"required,max=100"`
	RePwd  string `form:"re_pwd" binding:"required,max=100"`
}

func loginNext(c *gin.Context) string {
	if next := c.Query("next"); next != "" {
		return next
	}
	return c.PostForm("next")
}

// LoginPage godoc
// @Summary 登录页
// @Tags auth
// @Produce html
// @Param next query string false "登录成功后跳转的站内地址"
// @Success 200 {string} string "登录表单"
// @Router /login/ [get]
func (h *AuthHandler) LoginPage(c *gin.Context) {
	render(c, "login.html", gin.H{"Next": loginNext(c), "Form": LoginForm{}})
}

// Login godoc
// @Summary 管理员登录
// @Description 校验账号密码，成功后写入会话 Cookie 与登录日志，并跳转到 next 或首页
// @Tags auth
// @Accept x-www-form-urlencoded
// @Produce html
// @Param account formData string true "账号"
// @Param pwd formData string true "密码"
// @Param next query string false "登录成功后跳转的站内地址"
// @Success 302 {string} string "登录成功"
// @Success 200 {string} string "账号或密码错误，重新显示登录表单"
// @Failure 429 {string} string "登录过于频繁"
// @Router /login/ [post]
func (h *AuthHandler) Login(c *gin.Context) {
	next := loginNext(c)
	var form LoginForm
	if err := c.ShouldBind(&form); err != nil {
		render(c, "login.html", gin.H{"Next": next, "Form": form, "Errors": bindErrors(err)})
		return
	}

	admin, err := h.auth.Login(c.Request.Context(), form.Account, form.Pwd, c.ClientIP())
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			form.Pwd = ""
			render(c, "login.html", gin.H{
				"Next":  next,
				"Form":  form,
				"Flash": &Flash{Category: FlashErr, Message: err.Error()},
			})
			return
		}
		utils.RespondInternalServerError(c, "登录失败", err)
		return
	}

	token, _, err := h.sessions.Issue(admin.ID, admin.Name, admin.SessionVersion)
	if err != nil {
		utils.RespondInternalServerError(c, "登录失败", err)
		return
	}
	h.sessions.SetCookie(c, token)
	logger.L().Info("管理员登录", zap.Int64("admin_id", admin.ID), zap.String("ip", c.ClientIP()))
	utils.RedirectTo(c, utils.SafeRedirect(next, "/"))
}

// Logout godoc
// @Summary 退出登录
// @Tags auth
// @Success 302 {string} string "跳转到登录页"
// @Router /logout/ [get]
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := auth.Logout(c, h.sessions, h.denylist); err != nil {
		logger.L().Error("吊销会话失败", zap.Error(err))
	}
	utils.RedirectTo(c, auth.LoginPath)
}

// Index godoc
// @Summary 后台首页
// @Tags auth
// @Produce html
// @Success 200 {string} string "首页，显示机器、管理员与角色数量"
// @Router / [get]
func (h *AuthHandler) Index(c *gin.Context) {
	d, err := h.admins.Dashboard(c.Request.Context())
	if err != nil {
		utils.RespondInternalServerError(c, "加载首页失败", err)
		return
	}
	render(c, "index.html", gin.H{"Dashboard": d})
}

// PwdPage godoc
// @Summary 修改密码页
// @Tags auth
// @Produce html
// @Success 200 {string} string "修改密码表单"
// @Router /pwd/ [get]
func (h *AuthHandler) PwdPage(c *gin.Context) {
	render(c, "pwd.html", gin.H{"Form": PwdForm{}})
}

// Pwd godoc
// @Summary 修改密码
// @Description 校验旧密码后保存新密码，并吊销当前会话要求重新登录
// @Tags auth
// @Accept x-www-form-urlencoded
// @Produce html
// @Param old_pwd formData string true "旧密码"
// @Param new_pwd formData string true "新密码，至少6位"
// @Param re_pwd formData string true "重复新密码"
// @Success 302 {string} string "修改成功，跳转到登录页"
// @Success 200 {string} string "校验失败，重新显示表单"
// @Router /pwd/ [post]
func (h *AuthHandler) Pwd(c *gin.Context) {
	var form PwdForm
	if err := c.ShouldBind(&form); err != nil {
		render(c, "pwd.html", gin.H{"Form": PwdForm{}, "Errors": bindErrors(err)})
		return
	}

	err := h.auth.ChangePassword(c.Request.Context(), actor(c), form.OldPwd, form.NewPwd, form.RePwd)
	if err != nil {
		if fe := formErrors(err); fe != nil {
			render(c, "pwd.html", gin.H{"Form": PwdForm{}, "Errors": fe})
			return
		}
		respondServiceError(c, "管理员", err)
		return
	}

	if err := auth.Logout(c, h.sessions, h.denylist); err != nil {
		logger.L().Error("吊销会话失败", zap.Error(err))
	}
	SetFlash(c, FlashOK, "修改密码成功，请重新登录！")
	utils.RedirectTo(c, auth.LoginPath)
}
