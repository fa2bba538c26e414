package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/machine_admin/internal/metrics"
	"github.com/machine_admin/internal/models"
	"github.com/machine_admin/internal/repositories"
)

// Actor 执行操作的管理员及其请求 IP
type Actor struct {
	AdminID int64
	Name    string
	IP      string
}

// AuditService 定义了审计日志服务的接口
type AuditService interface {
	// WithTx 返回写入指定事务的审计服务，使操作日志与业务修改同时提交
	WithTx(tx *gorm.DB) AuditService
	RecordLogin(ctx context.Context, adminID int64, ip string) error
	RecordOperation(ctx context.Context, actor Actor, reason string) error
	ListAdminlogs(ctx context.Context, page int) (repositories.Page[models.Adminlog], error)
	ListOplogs(ctx context.Context, page int) (repositories.Page[models.Oplog], error)
}

// auditService 是 AuditService 的实现
type auditService struct {
	repo repositories.LogRepository
}

// NewAuditService 创建一个新的 auditService 实例
func NewAuditService(repo repositories.LogRepository) AuditService {
	return &auditService{repo: repo}
}

func (s *auditService) WithTx(tx *gorm.DB) AuditService {
	return &auditService{repo: s.repo.WithTx(tx)}
}

func (s *auditService) RecordLogin(ctx context.Context, adminID int64, ip string) error {
	return s.repo.CreateAdminlog(ctx, &models.Adminlog{AdminID: adminID, IP: ip})
}

func (s *auditService) RecordOperation(ctx context.Context, actor Actor, reason string) error {
	if err := s.repo.CreateOplog(ctx, &models.Oplog{AdminID: actor.AdminID, IP: actor.IP, Reason: reason}); err != nil {
		return err
	}
	metrics.OplogWritesTotal.Inc()
	return nil
}

func (s *auditService) ListAdminlogs(ctx context.Context, page int) (repositories.Page[models.Adminlog], error) {
	return s.repo.ListAdminlogs(ctx, page)
}

func (s *auditService) ListOplogs(ctx context.Context, page int) (repositories.Page[models.Oplog], error) {
	return s.repo.ListOplogs(ctx, page)
}
