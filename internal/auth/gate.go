package auth

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/machine_admin/internal/metrics"
	"github.com/machine_admin/internal/services"
	"github.com/machine_admin/pkg/logger"
	"github.com/machine_admin/pkg/utils"
)

// Authorizer 判断管理员能否访问某个路由规则
type Authorizer interface {
	Authorize(ctx context.Context, adminID int64, route string) error
}

// GatePolicy 决定哪些路由规则需要做权限校验
type GatePolicy struct {
	// Enabled 为 true 时所有挂载 Gate 的路由都校验
	Enabled bool
	routes  map[string]struct{}
}

// NewGatePolicy 创建权限校验策略，routes 为即使全局关闭也要校验的路由规则
func NewGatePolicy(enabled bool, routes []string) GatePolicy {
	p := GatePolicy{Enabled: enabled, routes: make(map[string]struct{}, len(routes))}
	for _, r := range routes {
		p.routes[r] = struct{}{}
	}
	return p
}

// Enforced 路由规则是否需要校验
func (p GatePolicy) Enforced(route string) bool {
	if p.Enabled {
		return true
	}
	_, ok := p.routes[route]
	return ok
}

// Gate 是权限校验中间件，必须挂在 SessionRequired 之后。
// 路由规则取 gin 的路由模板（c.FullPath()），与权限规则的 url 做完全匹配；
// 不允许访问时返回 404。
func Gate(policy GatePolicy, authz Authorizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		route := c.FullPath()
		if !policy.Enforced(route) {
			c.Next()
			return
		}

		s, ok := CurrentAdmin(c)
		if !ok {
			metrics.AuthorizationDenialsTotal.WithLabelValues(route).Inc()
			utils.RespondNotFoundError(c)
			return
		}

		err := authz.Authorize(c.Request.Context(), s.AdminID, route)
		switch {
		case err == nil:
			c.Next()
		case errors.Is(err, services.ErrNotFound):
			logger.L().Info("权限校验未通过",
				zap.Int64("admin_id", s.AdminID),
				zap.String("route", route),
			)
			metrics.AuthorizationDenialsTotal.WithLabelValues(route).Inc()
			utils.RespondNotFoundError(c)
		default:
			utils.RespondInternalServerError(c, "权限校验失败", err)
		}
	}
}
