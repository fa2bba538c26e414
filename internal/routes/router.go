package routes

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/machine_admin/configs"
	_ "github.com/machine_admin/docs"
	"github.com/machine_admin/internal/auth"
	"github.com/machine_admin/internal/handlers"
	"github.com/machine_admin/internal/middleware"
	"github.com/machine_admin/internal/repositories"
	"github.com/machine_admin/internal/services"
	"github.com/machine_admin/internal/web"
	"github.com/machine_admin/pkg/utils"
)

// Options 构建路由所需的依赖
type Options struct {
	Config   configs.Configuration
	DB       *gorm.DB
	Denylist auth.Denylist
}

// Handlers 全部页面处理器
type Handlers struct {
	Auth        *handlers.AuthHandler
	Admin       *handlers.AdminHandler
	Role        *handlers.RoleHandler
	Permission  *handlers.PermissionHandler
	Machine     *handlers.MachineHandler
	Machineroom *handlers.CatalogHandler
	Platform    *handlers.CatalogHandler
	Log         *handlers.LogHandler
}

// NewRouter 组装仓库、服务与处理器，返回配置好全部路由的 gin 引擎
func NewRouter(opts Options) (*gin.Engine, error) {
	cfg := opts.Config
	db := opts.DB
	denylist := opts.Denylist
	if denylist == nil {
		denylist = auth.NewMemoryDenylist()
	}

	adminRepo := repositories.NewGormAdminRepository(db)
	roleRepo := repositories.NewGormRoleRepository(db)
	authRepo := repositories.NewGormAuthRepository(db)
	logRepo := repositories.NewGormLogRepository(db)
	machineRepo := repositories.NewGormMachineRepository(db)
	machineroomRepo := repositories.NewGormMachineroomRepository(db)
	platformRepo := repositories.NewGormPlatformRepository(db)

	audit := services.NewAuditService(logRepo)
	authService := services.NewAuthService(db, adminRepo, audit)
	adminService := services.NewAdminService(db, adminRepo, roleRepo, machineRepo, audit)
	roleService := services.NewRoleService(db, roleRepo, authRepo, adminRepo, audit)
	permissionService := services.NewPermissionService(db, authRepo, roleRepo, adminRepo, audit)
	machineService := services.NewMachineService(db, machineRepo, machineroomRepo, platformRepo, audit)
	machineroomService := services.NewMachineroomService(db, machineroomRepo, machineRepo, audit)
	platformService := services.NewPlatformService(db, platformRepo, machineRepo, audit)

	sessions := auth.NewSessionManager(cfg.SessionSecret, cfg.SessionTTL, cfg.CookieSecure)

	h := Handlers{
		Auth:        handlers.NewAuthHandler(authService, adminService, sessions, denylist),
		Admin:       handlers.NewAdminHandler(adminService, roleService),
		Role:        handlers.NewRoleHandler(roleService, permissionService),
		Permission:  handlers.NewPermissionHandler(permissionService),
		Machine:     handlers.NewMachineHandler(machineService, machineroomService, platformService),
		Machineroom: handlers.NewCatalogHandler(machineroomService, "machineroom"),
		Platform:    handlers.NewCatalogHandler(platformService, "platform"),
		Log:         handlers.NewLogHandler(audit),
	}

	handlers.RegisterFormTagNames()

	router := gin.New()
	if err := router.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, err
	}
	tmpl, err := web.Templates()
	if err != nil {
		return nil, err
	}
	router.SetHTMLTemplate(tmpl)

	router.Use(
		middleware.RequestID(),
		middleware.Recovery(),
		middleware.Logger(),
		middleware.Metrics(),
		handlers.CookieSecurity(cfg.CookieSecure),
	)
	router.NoRoute(func(c *gin.Context) {
		utils.RespondNotFoundError(c)
	})

	router.StaticFS("/static", http.FS(web.Static()))
	router.GET("/healthz", healthz(db))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	SetupAuthRoutes(router, h.Auth, cfg.LoginRateLimit)

	protected := router.Group("/")
	protected.Use(auth.SessionRequired(sessions, denylist, authService))
	// 首页、退出、修改密码只要求登录
	protected.GET("/", h.Auth.Index)
	protected.GET("/logout/", h.Auth.Logout)
	protected.GET("/pwd/", h.Auth.PwdPage)
	protected.POST("/pwd/", h.Auth.Pwd)

	gated := protected.Group("/")
	gated.Use(auth.Gate(auth.NewGatePolicy(cfg.AuthzEnabled, cfg.AuthzRoutes), permissionService))
	SetupAdminRoutes(gated, h)

	return router, nil
}

// healthz godoc
// @Summary 健康检查
// @Tags ops
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /healthz [get]
func healthz(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(ctx)
		}
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
