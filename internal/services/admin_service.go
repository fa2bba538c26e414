package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/machine_admin/internal/models"
	"github.com/machine_admin/internal/repositories"
	"github.com/machine_admin/pkg/utils"
)

// CreateAdminInput 添加管理员的输入
type CreateAdminInput struct {
	Name    string
	Pwd     string
	RePwd   string
	RoleID  int64
	IsSuper bool
}

// Dashboard 首页统计
type Dashboard struct {
	Machines int64
	Admins   int64
	Roles    int64
}

// AdminService 定义了管理员服务的接口
type AdminService interface {
	Create(ctx context.Context, actor Actor, in CreateAdminInput) (*models.Admin, error)
	List(ctx context.Context, page int) (repositories.Page[models.Admin], error)
	Dashboard(ctx context.Context) (Dashboard, error)
}

// adminService 是 AdminService 的实现
type adminService struct {
	db       *gorm.DB
	admins   repositories.AdminRepository
	roles    repositories.RoleRepository
	machines repositories.MachineRepository
	audit    AuditService
}

// NewAdminService 创建一个新的 adminService 实例
func NewAdminService(db *gorm.DB, admins repositories.AdminRepository, roles repositories.RoleRepository,
	machines repositories.MachineRepository, audit AuditService) AdminService {
	return &adminService{db: db, admins: admins, roles: roles, machines: machines, audit: audit}
}

func (s *adminService) Create(ctx context.Context, actor Actor, in CreateAdminInput) (*models.Admin, error) {
	name := utils.NormalizeName(in.Name)

	verr := &ValidationError{}
	if name == "" {
		verr.Add("name", "请输入管理员名称")
	} else if _, err := s.admins.GetByName(ctx, name); err == nil {
		verr.Add("name", "管理员名称已经存在")
	} else if !errors.Is(err, repositories.ErrRecordNotFound) {
		return nil, err
	}
	if len(in.Pwd) < MinPasswordLength {
		verr.Add("pwd", "密码至少6位")
	}
	if in.Pwd != in.RePwd {
		verr.Add("re_pwd", "两次输入的密码不一致")
	}
	if _, err := s.roles.GetByID(ctx, in.RoleID); err != nil {
		if !errors.Is(err, repositories.ErrRecordNotFound) {
			return nil, err
		}
		verr.Add("role_id", "所属角色不存在")
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	hash, err := utils.HashPassword(in.Pwd)
	if err != nil {
		return nil, err
	}
	admin := &models.Admin{Name: name, Pwd: hash, RoleID: in.RoleID, IsSuper: in.IsSuper}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.admins.WithTx(tx).Create(ctx, admin); err != nil {
			if isUniqueViolation(err) {
				return NewValidationError("name", "管理员名称已经存在")
			}
			return err
		}
		if actor.AdminID == 0 {
			// 命令行初始化管理员时没有操作人
			return nil
		}
		return s.audit.WithTx(tx).RecordOperation(ctx, actor, "添加管理员："+name)
	})
	if err != nil {
		return nil, err
	}
	return admin, nil
}

func (s *adminService) List(ctx context.Context, page int) (repositories.Page[models.Admin], error) {
	return s.admins.List(ctx, page)
}

func (s *adminService) Dashboard(ctx context.Context) (Dashboard, error) {
	var d Dashboard
	var err error
	if d.Machines, err = s.machines.Count(ctx); err != nil {
		return d, err
	}
	if d.Admins, err = s.admins.Count(ctx); err != nil {
		return d, err
	}
	if d.Roles, err = s.roles.Count(ctx); err != nil {
		return d, err
	}
	return d, nil
}
