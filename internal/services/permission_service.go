package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/machine_admin/internal/models"
	"github.com/machine_admin/internal/repositories"
)

// AuthInput 权限规则表单输入
type AuthInput struct {
	Name string
	URL  string
}

// PermissionService 定义了权限规则服务的接口
type PermissionService interface {
	Create(ctx context.Context, actor Actor, in AuthInput) (*models.Auth, error)
	Get(ctx context.Context, id int64) (*models.Auth, error)
	List(ctx context.Context, page int) (repositories.Page[models.Auth], error)
	All(ctx context.Context) ([]models.Auth, error)
	Update(ctx context.Context, actor Actor, id int64, in AuthInput) (*models.Auth, error)
	Delete(ctx context.Context, actor Actor, id int64) (*models.Auth, error)
	// Authorize 判断管理员能否访问 route。route 必须与某条权限规则的 url 完全相同；
	// 不允许时返回 ErrNotFound
	Authorize(ctx context.Context, adminID int64, route string) error
	// AllowedRoutes 返回管理员角色下的全部 url，按角色中的顺序
	AllowedRoutes(ctx context.Context, adminID int64) ([]string, error)
}

// permissionService 是 PermissionService 的实现
type permissionService struct {
	db     *gorm.DB
	auths  repositories.AuthRepository
	roles  repositories.RoleRepository
	admins repositories.AdminRepository
	audit  AuditService
}

// NewPermissionService 创建一个新的 permissionService 实例
func NewPermissionService(db *gorm.DB, auths repositories.AuthRepository, roles repositories.RoleRepository,
	admins repositories.AdminRepository, audit AuditService) PermissionService {
	return &permissionService{db: db, auths: auths, roles: roles, admins: admins, audit: audit}
}

func (s *permissionService) validate(ctx context.Context, in AuthInput, selfID int64) (AuthInput, error) {
	out := AuthInput{Name: normalizeText(in.Name), URL: normalizeText(in.URL)}
	verr := &ValidationError{}
	if out.Name == "" {
		verr.Add("name", "请输入权限名称")
	}
	if out.URL == "" {
		verr.Add("url", "请输入权限地址")
	} else if existing, err := s.auths.GetByURL(ctx, out.URL); err == nil {
		if existing.ID != selfID {
			verr.Add("url", "权限地址已经存在")
		}
	} else if !errors.Is(err, repositories.ErrRecordNotFound) {
		return out, err
	}
	return out, verr.OrNil()
}

func (s *permissionService) Create(ctx context.Context, actor Actor, in AuthInput) (*models.Auth, error) {
	in, err := s.validate(ctx, in, 0)
	if err != nil {
		return nil, err
	}
	auth := &models.Auth{Name: in.Name, URL: in.URL}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.auths.WithTx(tx).Create(ctx, auth); err != nil {
			if isUniqueViolation(err) {
				return NewValidationError("url", "权限地址已经存在")
			}
			return err
		}
		return s.audit.WithTx(tx).RecordOperation(ctx, actor, "添加权限："+auth.Name+"("+auth.URL+")")
	})
	if err != nil {
		return nil, err
	}
	return auth, nil
}

func (s *permissionService) Get(ctx context.Context, id int64) (*models.Auth, error) {
	auth, err := s.auths.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return auth, nil
}

func (s *permissionService) List(ctx context.Context, page int) (repositories.Page[models.Auth], error) {
	return s.auths.List(ctx, page)
}

func (s *permissionService) All(ctx context.Context) ([]models.Auth, error) {
	return s.auths.All(ctx)
}

func (s *permissionService) Update(ctx context.Context, actor Actor, id int64, in AuthInput) (*models.Auth, error) {
	auth, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	in, err = s.validate(ctx, in, auth.ID)
	if err != nil {
		return nil, err
	}
	auth.Name, auth.URL = in.Name, in.URL
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.auths.WithTx(tx).Update(ctx, auth); err != nil {
			if isUniqueViolation(err) {
				return NewValidationError("url", "权限地址已经存在")
			}
			return err
		}
		return s.audit.WithTx(tx).RecordOperation(ctx, actor, "修改权限："+auth.Name+"("+auth.URL+")")
	})
	if err != nil {
		return nil, err
	}
	return auth, nil
}

func (s *permissionService) Delete(ctx context.Context, actor Actor, id int64) (*models.Auth, error) {
	auth, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.auths.WithTx(tx).Delete(ctx, id); err != nil {
			return mapNotFound(err)
		}
		return s.audit.WithTx(tx).RecordOperation(ctx, actor, "删除权限："+auth.Name+"("+auth.URL+")")
	})
	if err != nil {
		return nil, err
	}
	return auth, nil
}

func (s *permissionService) AllowedRoutes(ctx context.Context, adminID int64) ([]string, error) {
	admin, err := s.admins.GetByID(ctx, adminID)
	if err != nil {
		return nil, mapNotFound(err)
	}
	// 角色行缺失（历史数据）按无权限处理
	if _, err := s.roles.GetByID(ctx, admin.RoleID); err != nil {
		return nil, mapNotFound(err)
	}
	return s.auths.URLsByRole(ctx, admin.RoleID)
}

func (s *permissionService) Authorize(ctx context.Context, adminID int64, route string) error {
	urls, err := s.AllowedRoutes(ctx, adminID)
	if err != nil {
		return err
	}
	for _, u := range urls {
		if u == route {
			return nil
		}
	}
	return ErrNotFound
}
