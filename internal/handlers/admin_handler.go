package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/machine_admin/internal/services"
	"github.com/machine_admin/pkg/utils"
)

// AdminHandler 封装了管理员相关的 HTTP 处理逻辑
type AdminHandler struct {
	admins services.AdminService
	roles  services.RoleService
}

// NewAdminHandler 创建一个新的 AdminHandler 实例
func NewAdminHandler(admins services.AdminService, roles services.RoleService) *AdminHandler {
	return &AdminHandler{admins: admins, roles: roles}
}

// AdminForm 添加管理员表单
type AdminForm struct {
	Name    string `form:"name" binding:"required,max=100"`
	Pwd     string `form:"pwd" binding:"required,max=100"`
	RePwd   string `form:"re_pwd" binding:"required,eqfield=Pwd"`
	RoleID  int64  `form:"role_id" binding:"gt=0"`
	IsSuper bool   `form:"is_super"`
}

func (h *AdminHandler) renderForm(c *gin.Context, data gin.H) {
	roles, err := h.roles.All(c.Request.Context())
	if err != nil {
		utils.RespondInternalServerError(c, "加载角色失败", err)
		return
	}
	data["Roles"] = roles
	render(c, "admin_add.html", data)
}

// AddPage godoc
// @Summary 添加管理员页
// @Tags admin
// @Produce html
// @Success 200 {string} string "添加管理员表单"
// @Router /admin/add/ [get]
func (h *AdminHandler) AddPage(c *gin.Context) {
	h.renderForm(c, gin.H{"Form": AdminForm{}})
}

// Add godoc
// @Summary 添加管理员
// @Tags admin
// @Accept x-www-form-urlencoded
// @Produce html
// @Param name formData string true "管理员名称"
// @Param pwd formData string true "密码，至少6位"
// @Param re_pwd formData string true "重复密码"
// @Param role_id formData int true "所属角色"
// @Param is_super formData bool false "是否超级管理员"
// @Success 302 {string} string "添加成功"
// @Success 200 {string} string "校验失败，重新显示表单"
// @Router /admin/add/ [post]
func (h *AdminHandler) Add(c *gin.Context) {
	var form AdminForm
	if err := c.ShouldBind(&form); err != nil {
		form.Pwd, form.RePwd = "", ""
		h.renderForm(c, gin.H{"Form": form, "Errors": bindErrors(err)})
		return
	}
	_, err := h.admins.Create(c.Request.Context(), actor(c), services.CreateAdminInput{
		Name:    form.Name,
		Pwd:     form.Pwd,
		RePwd:   form.RePwd,
		RoleID:  form.RoleID,
		IsSuper: form.IsSuper,
	})
	if err != nil {
		if fe := formErrors(err); fe != nil {
			form.Pwd, form.RePwd = "", ""
			h.renderForm(c, gin.H{"Form": form, "Errors": fe})
			return
		}
		respondServiceError(c, "管理员", err)
		return
	}
	SetFlash(c, FlashOK, "添加管理员成功！")
	utils.RedirectTo(c, "/admin/add/")
}

// List godoc
// @Summary 管理员列表
// @Tags admin
// @Produce html
// @Param page path int true "页码，从 1 开始"
// @Success 200 {string} string "管理员列表，每页 10 条"
// @Router /admin/list/{page}/ [get]
func (h *AdminHandler) List(c *gin.Context) {
	page, ok := pageParam(c)
	if !ok {
		return
	}
	data, err := h.admins.List(c.Request.Context(), page)
	if err != nil {
		utils.RespondInternalServerError(c, "加载管理员列表失败", err)
		return
	}
	render(c, "admin_list.html", gin.H{"Page": data, "ListURL": "/admin/list/"})
}
