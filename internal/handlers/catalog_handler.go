package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/machine_admin/internal/services"
	"github.com/machine_admin/pkg/utils"
)

// CatalogHandler 机房、平台共用的 HTTP 处理逻辑，prefix 为路由前缀
type CatalogHandler struct {
	service services.CatalogService
	prefix  string
}

// NewCatalogHandler 创建一个新的 CatalogHandler 实例
func NewCatalogHandler(service services.CatalogService, prefix string) *CatalogHandler {
	return &CatalogHandler{service: service, prefix: prefix}
}

// CatalogForm 机房/平台表单
type CatalogForm struct {
	Name string `form:"name" binding:"required,max=100"`
}

func (h *CatalogHandler) page(data gin.H) gin.H {
	data["Label"] = h.service.Label()
	data["Prefix"] = h.prefix
	return data
}

// List godoc
// @Summary 机房/平台列表
// @Tags catalog
// @Produce html
// @Param page path int true "页码，从 1 开始"
// @Success 200 {string} string "列表，每页 10 条"
// @Router /machineroom/list/{page}/ [get]
// @Router /platform/list/{page}/ [get]
func (h *CatalogHandler) List(c *gin.Context) {
	page, ok := pageParam(c)
	if !ok {
		return
	}
	data, err := h.service.List(c.Request.Context(), page)
	if err != nil {
		utils.RespondInternalServerError(c, "加载"+h.service.Label()+"列表失败", err)
		return
	}
	render(c, "catalog_list.html", h.page(gin.H{"Page": data, "ListURL": "/" + h.prefix + "/list/"}))
}

// AddPage godoc
// @Summary 添加机房/平台页
// @Tags catalog
// @Produce html
// @Success 200 {string} string "表单"
// @Router /machineroom/add/ [get]
// @Router /platform/add/ [get]
func (h *CatalogHandler) AddPage(c *gin.Context) {
	render(c, "catalog_form.html", h.page(gin.H{"Form": CatalogForm{}}))
}

// Add godoc
// @Summary 添加机房/平台
// @Tags catalog
// @Accept x-www-form-urlencoded
// @Produce html
// @Param name formData string true "名称"
// @Success 302 {string} string "添加成功，跳转到列表第一页"
// @Success 200 {string} string "校验失败，重新显示表单"
// @Router /machineroom/add/ [post]
// @Router /platform/add/ [post]
func (h *CatalogHandler) Add(c *gin.Context) {
	var form CatalogForm
	if err := c.ShouldBind(&form); err != nil {
		render(c, "catalog_form.html", h.page(gin.H{"Form": form, "Errors": bindErrors(err)}))
		return
	}
	if _, err := h.service.Create(c.Request.Context(), actor(c), form.Name); err != nil {
		if fe := formErrors(err); fe != nil {
			render(c, "catalog_form.html", h.page(gin.H{"Form": form, "Errors": fe}))
			return
		}
		respondServiceError(c, h.service.Label(), err)
		return
	}
	SetFlash(c, FlashOK, "添加"+h.service.Label()+"成功！")
	utils.RedirectTo(c, listURL(h.prefix, 1))
}

// EditPage godoc
// @Summary 编辑机房/平台页
// @Tags catalog
// @Produce html
// @Param id path int true "ID"
// @Success 200 {string} string "表单"
// @Failure 404 {string} string "记录不存在"
// @Router /machineroom/edit/{id}/ [get]
// @Router /platform/edit/{id}/ [get]
func (h *CatalogHandler) EditPage(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	item, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, h.service.Label(), err)
		return
	}
	render(c, "catalog_form.html", h.page(gin.H{"Item": item, "Form": CatalogForm{Name: item.Name}}))
}

// Edit godoc
// @Summary 编辑机房/平台
// @Tags catalog
// @Accept x-www-form-urlencoded
// @Produce html
// @Param id path int true "ID"
// @Param name formData string true "名称"
// @Success 302 {string} string "修改成功，跳转到列表第一页"
// @Failure 404 {string} string "记录不存在"
// @Router /machineroom/edit/{id}/ [post]
// @Router /platform/edit/{id}/ [post]
func (h *CatalogHandler) Edit(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	item, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, h.service.Label(), err)
		return
	}
	var form CatalogForm
	if err := c.ShouldBind(&form); err != nil {
		render(c, "catalog_form.html", h.page(gin.H{"Item": item, "Form": form, "Errors": bindErrors(err)}))
		return
	}
	if _, err := h.service.Rename(c.Request.Context(), actor(c), id, form.Name); err != nil {
		if fe := formErrors(err); fe != nil {
			render(c, "catalog_form.html", h.page(gin.H{"Item": item, "Form": form, "Errors": fe}))
			return
		}
		respondServiceError(c, h.service.Label(), err)
		return
	}
	SetFlash(c, FlashOK, "修改"+h.service.Label()+"成功！")
	utils.RedirectTo(c, listURL(h.prefix, 1))
}

// Delete godoc
// @Summary 删除机房/平台
// @Description 仍有机器引用时拒绝删除
// @Tags catalog
// @Param id path int true "ID"
// @Success 302 {string} string "跳转到列表第一页"
// @Failure 404 {string} string "记录不存在"
// @Router /machineroom/del/{id}/ [get]
// @Router /platform/del/{id}/ [get]
func (h *CatalogHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	item, err := h.service.Delete(c.Request.Context(), actor(c), id)
	switch {
	case err == nil:
		SetFlash(c, FlashOK, "删除"+h.service.Label()+item.Name+"成功！")
	case errors.Is(err, services.ErrCatalogInUse):
		SetFlash(c, FlashErr, err.Error())
	default:
		respondServiceError(c, h.service.Label(), err)
		return
	}
	utils.RedirectTo(c, listURL(h.prefix, 1))
}
