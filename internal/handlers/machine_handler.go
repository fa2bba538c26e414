package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/machine_admin/internal/models"
	"github.com/machine_admin/internal/services"
	"github.com/machine_admin/pkg/utils"
)

// MachineHandler 封装了机器相关的 HTTP 处理逻辑
type MachineHandler struct {
	machines     services.MachineService
	machinerooms services.CatalogService
	platforms    services.CatalogService
}

// NewMachineHandler 创建一个新的 MachineHandler 实例
func NewMachineHandler(machines services.MachineService, machinerooms, platforms services.CatalogService) *MachineHandler {
	return &MachineHandler{machines: machines, machinerooms: machinerooms, platforms: platforms}
}

// MachineForm 机器表单
type MachineForm struct {
	Name          string `form:"name" binding:"required,max=100"`
	URL           string `form:"url" binding:"max=255"`
	CPU           string `form:"cpu" binding:"max=100"`
	RAM           string `form:"ram" binding:"max=100"`
	IPMI          string `form:"ipmi" binding:"max=100"`
	MachineroomID int64  `form:"machineroom_id" binding:"gt=0"`
	PlatformID    int64  `form:"platform_id" binding:"gt=0"`
	Putontime     string `form:"putontime" binding:"max=20"`
}

func (f MachineForm) input() services.MachineInput {
	return services.MachineInput{
		Name:          f.Name,
		URL:           f.URL,
		CPU:           f.CPU,
		RAM:           f.RAM,
		IPMI:          f.IPMI,
		MachineroomID: f.MachineroomID,
		PlatformID:    f.PlatformID,
		Putontime:     f.Putontime,
	}
}

func machineFormOf(m *models.Machine) MachineForm {
	f := MachineForm{
		Name:          m.Name,
		URL:           m.URL,
		CPU:           m.CPU,
		RAM:           m.RAM,
		IPMI:          m.IPMI,
		MachineroomID: m.MachineroomID,
		PlatformID:    m.PlatformID,
	}
	if m.Putontime != nil {
		f.Putontime = m.Putontime.Format("2006-01-02")
	}
	return f
}

// renderForm 渲染新增/编辑表单，附带机房与平台下拉选项
func (h *MachineHandler) renderForm(c *gin.Context, tmpl string, data gin.H) {
	ctx := c.Request.Context()
	rooms, err := h.machinerooms.All(ctx)
	if err != nil {
		utils.RespondInternalServerError(c, "加载机房失败", err)
		return
	}
	platforms, err := h.platforms.All(ctx)
	if err != nil {
		utils.RespondInternalServerError(c, "加载平台失败", err)
		return
	}
	data["Machinerooms"] = rooms
	data["Platforms"] = platforms
	render(c, tmpl, data)
}

// List godoc
// @Summary 机器列表
// @Tags machine
// @Produce html
// @Param page path int true "页码，从 1 开始"
// @Success 200 {string} string "机器列表，每页 10 条"
// @Failure 404 {string} string "页码无效或无权限"
// @Router /machine/list/{page}/ [get]
func (h *MachineHandler) List(c *gin.Context) {
	page, ok := pageParam(c)
	if !ok {
		return
	}
	data, err := h.machines.List(c.Request.Context(), page)
	if err != nil {
		utils.RespondInternalServerError(c, "加载机器列表失败", err)
		return
	}
	render(c, "machine_list.html", gin.H{"Page": data, "ListURL": "/machine/list/"})
}

// AddPage godoc
// @Summary 添加机器页
// @Tags machine
// @Produce html
// @Success 200 {string} string "添加机器表单"
// @Router /machine/add/ [get]
func (h *MachineHandler) AddPage(c *gin.Context) {
	h.renderForm(c, "machine_add.html", gin.H{"Form": MachineForm{}})
}

// Add godoc
// @Summary 添加机器
// @Description 保存机器并写入操作日志，成功后跳转到机器列表第一页
// @Tags machine
// @Accept x-www-form-urlencoded
// @Produce html
// @Param name formData string true "机器名称"
// @Param url formData string false "管理地址"
// @Param cpu formData string false "CPU"
// @Param ram formData string false "内存"
// @Param ipmi formData string false "IPMI 地址"
// @Param machineroom_id formData int true "所属机房"
// @Param platform_id formData int true "所属平台"
// @Param putontime formData string false "上架日期 YYYY-MM-DD"
// @Success 302 {string} string "添加成功"
// @Success 200 {string} string "校验失败，重新显示表单"
// @Router /machine/add/ [post]
func (h *MachineHandler) Add(c *gin.Context) {
	var form MachineForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderForm(c, "machine_add.html", gin.H{"Form": form, "Errors": bindErrors(err)})
		return
	}
	if _, err := h.machines.Create(c.Request.Context(), actor(c), form.input()); err != nil {
		if fe := formErrors(err); fe != nil {
			h.renderForm(c, "machine_add.html", gin.H{"Form": form, "Errors": fe})
			return
		}
		respondServiceError(c, "机器", err)
		return
	}
	SetFlash(c, FlashOK, "添加机器成功！")
	utils.RedirectTo(c, "/machine/list/1/")
}

// EditPage godoc
// @Summary 编辑机器页
// @Tags machine
// @Produce html
// @Param id path int true "机器 ID"
// @Success 200 {string} string "编辑机器表单"
// @Failure 404 {string} string "机器不存在"
// @Router /machine/edit/{id}/ [get]
func (h *MachineHandler) EditPage(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	m, err := h.machines.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, "机器", err)
		return
	}
	h.renderForm(c, "machine_edit.html", gin.H{"Machine": m, "Form": machineFormOf(m)})
}

// Edit godoc
// @Summary 编辑机器
// @Tags machine
// @Accept x-www-form-urlencoded
// @Produce html
// @Param id path int true "机器 ID"
// @Param name formData string true "机器名称"
// @Param machineroom_id formData int true "所属机房"
// @Param platform_id formData int true "所属平台"
// @Success 302 {string} string "修改成功，跳转到机器列表"
// @Success 200 {string} string "校验失败，重新显示表单"
// @Failure 404 {string} string "机器不存在"
// @Router /machine/edit/{id}/ [post]
func (h *MachineHandler) Edit(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	m, err := h.machines.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, "机器", err)
		return
	}

	var form MachineForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderForm(c, "machine_edit.html", gin.H{"Machine": m, "Form": form, "Errors": bindErrors(err)})
		return
	}
	if _, err := h.machines.Update(c.Request.Context(), actor(c), id, form.input()); err != nil {
		if fe := formErrors(err); fe != nil {
			h.renderForm(c, "machine_edit.html", gin.H{"Machine": m, "Form": form, "Errors": fe})
			return
		}
		respondServiceError(c, "机器", err)
		return
	}
	SetFlash(c, FlashOK, "修改机器信息成功！")
	utils.RedirectTo(c, "/machine/list/1/")
}

// Delete godoc
// @Summary 删除机器
// @Tags machine
// @Param id path int true "机器 ID"
// @Success 302 {string} string "删除成功，跳转到机器列表第一页"
// @Failure 404 {string} string "机器不存在"
// @Router /machine/del/{id}/ [get]
func (h *MachineHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	m, err := h.machines.Delete(c.Request.Context(), actor(c), id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.RespondNotFoundError(c, "机器")
			return
		}
		utils.RespondInternalServerError(c, "删除机器失败", err)
		return
	}
	SetFlash(c, FlashOK, "删除机器"+m.Name+"成功！")
	utils.RedirectTo(c, "/machine/list/1/")
}

// listURL 生成列表页地址
func listURL(prefix string, page int) string {
	return "/" + prefix + "/list/" + strconv.Itoa(page) + "/"
}
