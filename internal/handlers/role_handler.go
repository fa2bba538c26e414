package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/machine_admin/internal/services"
	"github.com/machine_admin/pkg/utils"
)

// RoleHandler 封装了角色相关的 HTTP 处理逻辑
type RoleHandler struct {
	roles services.RoleService
	perms services.PermissionService
}

// NewRoleHandler 创建一个新的 RoleHandler 实例
func NewRoleHandler(roles services.RoleService, perms services.PermissionService) *RoleHandler {
	return &RoleHandler{roles: roles, perms: perms}
}

// RoleForm 角色表单，auths 为多选的权限 ID，提交顺序即保存顺序
type RoleForm struct {
	Name  string  `form:"name" binding:"required,max=100"`
	Auths []int64 `form:"auths"`
}

// Selected 供模板判断某个权限是否已选中
func (f RoleForm) Selected(id int64) bool {
	for _, v := range f.Auths {
		if v == id {
			return true
		}
	}
	return false
}

func (h *RoleHandler) renderForm(c *gin.Context, tmpl string, data gin.H) {
	auths, err := h.perms.All(c.Request.Context())
	if err != nil {
		utils.RespondInternalServerError(c, "加载权限失败", err)
		return
	}
	data["Auths"] = auths
	render(c, tmpl, data)
}

// AddPage godoc
// @Summary 添加角色页
// @Tags role
// @Produce html
// @Success 200 {string} string "添加角色表单"
// @Router /role/add/ [get]
func (h *RoleHandler) AddPage(c *gin.Context) {
	h.renderForm(c, "role_add.html", gin.H{"Form": RoleForm{}})
}

// Add godoc
// @Summary 添加角色
// @Tags role
// @Accept x-www-form-urlencoded
// @Produce html
// @Param name formData string true "角色名称"
// @Param auths formData []int false "权限 ID，可多选" collectionFormat(multi)
// @Success 302 {string} string "添加成功"
// @Success 200 {string} string "校验失败，重新显示表单"
// @Router /role/add/ [post]
func (h *RoleHandler) Add(c *gin.Context) {
	var form RoleForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderForm(c, "role_add.html", gin.H{"Form": form, "Errors": bindErrors(err)})
		return
	}
	_, err := h.roles.Create(c.Request.Context(), actor(c), services.RoleInput{Name: form.Name, AuthIDs: form.Auths})
	if err != nil {
		if fe := formErrors(err); fe != nil {
			h.renderForm(c, "role_add.html", gin.H{"Form": form, "Errors": fe})
			return
		}
		respondServiceError(c, "角色", err)
		return
	}
	SetFlash(c, FlashOK, "添加角色成功！")
	utils.RedirectTo(c, "/role/add/")
}

// List godoc
// @Summary 角色列表
// @Tags role
// @Produce html
// @Param page path int true "页码，从 1 开始"
// @Success 200 {string} string "角色列表，每页 10 条"
// @Router /role/list/{page}/ [get]
func (h *RoleHandler) List(c *gin.Context) {
	page, ok := pageParam(c)
	if !ok {
		return
	}
	data, err := h.roles.List(c.Request.Context(), page)
	if err != nil {
		utils.RespondInternalServerError(c, "加载角色列表失败", err)
		return
	}
	render(c, "role_list.html", gin.H{"Page": data, "ListURL": "/role/list/"})
}

// EditPage godoc
// @Summary 编辑角色页
// @Tags role
// @Produce html
// @Param id path int true "角色 ID"
// @Success 200 {string} string "编辑角色表单"
// @Failure 404 {string} string "角色不存在"
// @Router /role/edit/{id}/ [get]
func (h *RoleHandler) EditPage(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	role, err := h.roles.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, "角色", err)
		return
	}
	h.renderForm(c, "role_edit.html", gin.H{"Role": role, "Form": RoleForm{Name: role.Name, Auths: role.AuthIDs()}})
}

// Edit godoc
// @Summary 编辑角色
// @Tags role
// @Accept x-www-form-urlencoded
// @Produce html
// @Param id path int true "角色 ID"
// @Param name formData string true "角色名称"
// @Param auths formData []int false "权限 ID，可多选" collectionFormat(multi)
// @Success 302 {string} string "修改成功"
// @Failure 404 {string} string "角色不存在"
// @Router /role/edit/{id}/ [post]
func (h *RoleHandler) Edit(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	role, err := h.roles.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, "角色", err)
		return
	}
	var form RoleForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderForm(c, "role_edit.html", gin.H{"Role": role, "Form": form, "Errors": bindErrors(err)})
		return
	}
	_, err = h.roles.Update(c.Request.Context(), actor(c), id, services.RoleInput{Name: form.Name, AuthIDs: form.Auths})
	if err != nil {
		if fe := formErrors(err); fe != nil {
			h.renderForm(c, "role_edit.html", gin.H{"Role": role, "Form": form, "Errors": fe})
			return
		}
		respondServiceError(c, "角色", err)
		return
	}
	SetFlash(c, FlashOK, "修改角色成功！")
	utils.RedirectTo(c, "/role/edit/"+strconv.FormatInt(id, 10)+"/")
}

// Delete godoc
// @Summary 删除角色
// @Description 仍有管理员使用该角色时拒绝删除
// @Tags role
// @Param id path int true "角色 ID"
// @Success 302 {string} string "跳转到角色列表第一页"
// @Failure 404 {string} string "角色不存在"
// @Router /role/del/{id}/ [get]
func (h *RoleHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	_, err := h.roles.Delete(c.Request.Context(), actor(c), id)
	switch {
	case err == nil:
		SetFlash(c, FlashOK, "删除角色成功！")
	case errors.Is(err, services.ErrRoleInUse):
		SetFlash(c, FlashErr, err.Error())
	default:
		respondServiceError(c, "角色", err)
		return
	}
	utils.RedirectTo(c, "/role/list/1/")
}
