package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/machine_admin/internal/handlers"
)

// SetupAdminRoutes 注册需要登录且受权限校验的后台路由。
// 路由模板即权限规则的 url，例如 /machine/list/:page/
func SetupAdminRoutes(r *gin.RouterGroup, h Handlers) {
	machine := r.Group("/machine")
	{
		machine.GET("/list/:page/", h.Machine.List)
		machine.GET("/add/", h.Machine.AddPage)
		machine.POST("/add/", h.Machine.Add)
		machine.GET("/edit/:id/", h.Machine.EditPage)
		machine.POST("/edit/:id/", h.Machine.Edit)
		machine.GET("/del/:id/", h.Machine.Delete)
	}

	setupCatalogRoutes(r.Group("/machineroom"), h.Machineroom)
	setupCatalogRoutes(r.Group("/platform"), h.Platform)

	admin := r.Group("/admin")
	{
		admin.GET("/add/", h.Admin.AddPage)
		admin.POST("/add/", h.Admin.Add)
		admin.GET("/list/:page/", h.Admin.List)
	}

	role := r.Group("/role")
	{
		role.GET("/add/", h.Role.AddPage)
		role.POST("/add/", h.Role.Add)
		role.GET("/list/:page/", h.Role.List)
		role.GET("/edit/:id/", h.Role.EditPage)
		role.POST("/edit/:id/", h.Role.Edit)
		role.GET("/del/:id/", h.Role.Delete)
	}

	authRule := r.Group("/auth")
	{
		authRule.GET("/add/", h.Permission.AddPage)
		authRule.POST("/add/", h.Permission.Add)
		authRule.GET("/list/:page/", h.Permission.List)
		authRule.GET("/edit/:id/", h.Permission.EditPage)
		authRule.POST("/edit/:id/", h.Permission.Edit)
		authRule.GET("/del/:id/", h.Permission.Delete)
	}

	r.GET("/oplog/list/:page/", h.Log.OplogList)
	r.GET("/adminloginlog/list/:page/", h.Log.AdminloginlogList)
}

func setupCatalogRoutes(g *gin.RouterGroup, h *handlers.CatalogHandler) {
	g.GET("/list/:page/", h.List)
	g.GET("/add/", h.AddPage)
	g.POST("/add/", h.Add)
	g.GET("/edit/:id/", h.EditPage)
	g.POST("/edit/:id/", h.Edit)
	g.GET("/del/:id/", h.Delete)
}
