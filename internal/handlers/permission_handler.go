package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/machine_admin/internal/services"
	"github.com/machine_admin/pkg/utils"
)

// PermissionHandler 封装了权限规则相关的 HTTP 处理逻辑
type PermissionHandler struct {
	perms services.PermissionService
}

// NewPermissionHandler 创建一个新的 PermissionHandler 实例
func NewPermissionHandler(perms services.PermissionService) *PermissionHandler {
	return &PermissionHandler{perms: perms}
}

// AuthForm 权限规则表单，url 填写路由规则，例如 /machine/list/:page/
type AuthForm struct {
	Name string `form:"name" binding:"required,max=100"`
	URL  string `form:"url" binding:"required,max=255"`
}

// AddPage godoc
// @Summary 添加权限页
// @Tags auth-rule
// @Produce html
// @Success 200 {string} string "添加权限表单"
// @Router /auth/add/ [get]
func (h *PermissionHandler) AddPage(c *gin.Context) {
	render(c, "auth_add.html", gin.H{"Form": AuthForm{}})
}

// Add godoc
// @Summary 添加权限
// @Tags auth-rule
// @Accept x-www-form-urlencoded
// @Produce html
// @Param name formData string true "权限名称"
// @Param url formData string true "路由规则"
// @Success 302 {string} string "添加成功"
// @Success 200 {string} string "校验失败，重新显示表单"
// @Router /auth/add/ [post]
func (h *PermissionHandler) Add(c *gin.Context) {
	var form AuthForm
	if err := c.ShouldBind(&form); err != nil {
		render(c, "auth_add.html", gin.H{"Form": form, "Errors": bindErrors(err)})
		return
	}
	if _, err := h.perms.Create(c.Request.Context(), actor(c), services.AuthInput{Name: form.Name, URL: form.URL}); err != nil {
		if fe := formErrors(err); fe != nil {
			render(c, "auth_add.html", gin.H{"Form": form, "Errors": fe})
			return
		}
		respondServiceError(c, "权限", err)
		return
	}
	SetFlash(c, FlashOK, "添加权限成功！")
	utils.RedirectTo(c, "/auth/add/")
}

// List godoc
// @Summary 权限列表
// @Tags auth-rule
// @Produce html
// @Param page path int true "页码，从 1 开始"
// @Success 200 {string} string "权限列表，每页 10 条"
// @Router /auth/list/{page}/ [get]
func (h *PermissionHandler) List(c *gin.Context) {
	page, ok := pageParam(c)
	if !ok {
		return
	}
	data, err := h.perms.List(c.Request.Context(), page)
	if err != nil {
		utils.RespondInternalServerError(c, "加载权限列表失败", err)
		return
	}
	render(c, "auth_list.html", gin.H{"Page": data, "ListURL": "/auth/list/"})
}

// EditPage godoc
// @Summary 编辑权限页
// @Tags auth-rule
// @Produce html
// @Param id path int true "权限 ID"
// @Success 200 {string} string "编辑权限表单"
// @Failure 404 {string} string "权限不存在"
// @Router /auth/edit/{id}/ [get]
func (h *PermissionHandler) EditPage(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	a, err := h.perms.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, "权限", err)
		return
	}
	render(c, "auth_edit.html", gin.H{"Auth": a, "Form": AuthForm{Name: a.Name, URL: a.URL}})
}

// Edit godoc
// @Summary 编辑权限
// @Tags auth-rule
// @Accept x-www-form-urlencoded
// @Produce html
// @Param id path int true "权限 ID"
// @Param name formData string true "权限名称"
// @Param url formData string true "路由规则"
// @Success 302 {string} string "修改成功"
// @Failure 404 {string} string "权限不存在"
// @Router /auth/edit/{id}/ [post]
func (h *PermissionHandler) Edit(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	a, err := h.perms.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, "权限", err)
		return
	}
	var form AuthForm
	if err := c.ShouldBind(&form); err != nil {
		render(c, "auth_edit.html", gin.H{"Auth": a, "Form": form, "Errors": bindErrors(err)})
		return
	}
	if _, err := h.perms.Update(c.Request.Context(), actor(c), id, services.AuthInput{Name: form.Name, URL: form.URL}); err != nil {
		if fe := formErrors(err); fe != nil {
			render(c, "auth_edit.html", gin.H{"Auth": a, "Form": form, "Errors": fe})
			return
		}
		respondServiceError(c, "权限", err)
		return
	}
	SetFlash(c, FlashOK, "修改权限成功！")
	utils.RedirectTo(c, "/auth/edit/"+strconv.FormatInt(id, 10)+"/")
}

// Delete godoc
// @Summary 删除权限
// @Description 同时从所有角色中移除该权限
// @Tags auth-rule
// @Param id path int true "权限 ID"
// @Success 302 {string} string "跳转到权限列表第一页"
// @Failure 404 {string} string "权限不存在"
// @Router /auth/del/{id}/ [get]
func (h *PermissionHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if _, err := h.perms.Delete(c.Request.Context(), actor(c), id); err != nil {
		respondServiceError(c, "权限", err)
		return
	}
	SetFlash(c, FlashOK, "删除权限成功！")
	utils.RedirectTo(c, "/auth/list/1/")
}
