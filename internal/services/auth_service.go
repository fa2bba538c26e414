package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/machine_admin/internal/metrics"
	"github.com/machine_admin/internal/models"
	"github.com/machine_admin/internal/repositories"
	"github.com/machine_admin/pkg/utils"
)

// MinPasswordLength 新密码最小长度
const MinPasswordLength = 6

// AuthService 定义了登录与改密服务的接口
type AuthService interface {
	// Login 校验账号密码，成功时写入一条登录日志
	Login(ctx context.Context, account, password, ip string) (*models.Admin, error)
	// ChangePassword 修改当前管理员密码，同时递增会话版本
	ChangePassword(ctx context.Context, actor Actor, oldPwd, newPwd, rePwd string) error
	SessionVersion(ctx context.Context, adminID int64) (int, error)
}

// authService 是 AuthService 的实现
type authService struct {
	db     *gorm.DB
	admins repositories.AdminRepository
	audit  AuditService
}

// NewAuthService 创建一个新的 authService 实例
func NewAuthService(db *gorm.DB, admins repositories.AdminRepository, audit AuditService) AuthService {
	return &authService{db: db, admins: admins, audit: audit}
}

func (s *authService) Login(ctx context.Context, account, password, ip string) (*models.Admin, error) {
	admin, err := s.admins.GetByName(ctx, utils.NormalizeName(account))
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			metrics.RecordLogin(false)
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !utils.CheckPassword(password, admin.Pwd) {
		metrics.RecordLogin(false)
		return nil, ErrInvalidCredentials
	}
	if err := s.audit.RecordLogin(ctx, admin.ID, ip); err != nil {
		return nil, err
	}
	metrics.RecordLogin(true)
	return admin, nil
}

func (s *authService) ChangePassword(ctx context.Context, actor Actor, oldPwd, newPwd, rePwd string) error {
	admin, err := s.admins.GetByID(ctx, actor.AdminID)
	if err != nil {
		return mapNotFound(err)
	}

	verr := &ValidationError{}
	if !utils.CheckPassword(oldPwd, admin.Pwd) {
		verr.Add("old_pwd", "旧密码错误")
	}
	if len(newPwd) < MinPasswordLength {
		verr.Add("new_pwd", "新密码至少6位")
	}
	if newPwd != rePwd {
		verr.Add("re_pwd", "两次输入的密码不一致")
	}
	if err := verr.OrNil(); err != nil {
		return err
	}

	hash, err := utils.HashPassword(newPwd)
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.admins.WithTx(tx).UpdatePassword(ctx, admin.ID, hash); err != nil {
			return mapNotFound(err)
		}
		return s.audit.WithTx(tx).RecordOperation(ctx, actor, "修改管理员："+admin.Name+"的密码")
	})
}

func (s *authService) SessionVersion(ctx context.Context, adminID int64) (int, error) {
	admin, err := s.admins.GetByID(ctx, adminID)
	if err != nil {
		return 0, mapNotFound(err)
	}
	return admin.SessionVersion, nil
}
