package services

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"gorm.io/gorm"

	"github.com/machine_admin/internal/models"
	"github.com/machine_admin/internal/repositories"
	"github.com/machine_admin/pkg/utils"
)

// RoleInput 角色表单输入，AuthIDs 的顺序即保存顺序
type RoleInput struct {
	Name    string
	AuthIDs []int64
}

// RoleService 定义了角色服务的接口
type RoleService interface {
	Create(ctx context.Context, actor Actor, in RoleInput) (*models.Role, error)
	Get(ctx context.Context, id int64) (*models.Role, error)
	List(ctx context.Context, page int) (repositories.Page[models.Role], error)
	All(ctx context.Context) ([]models.Role, error)
	Update(ctx context.Context, actor Actor, id int64, in RoleInput) (*models.Role, error)
	// Delete 删除角色；仍被管理员引用时返回 ErrRoleInUse
	Delete(ctx context.Context, actor Actor, id int64) (*models.Role, error)
}

// roleService 是 RoleService 的实现
type roleService struct {
	db     *gorm.DB
	roles  repositories.RoleRepository
	auths  repositories.AuthRepository
	admins repositories.AdminRepository
	audit  AuditService
}

// NewRoleService 创建一个新的 roleService 实例
func NewRoleService(db *gorm.DB, roles repositories.RoleRepository, auths repositories.AuthRepository,
	admins repositories.AdminRepository, audit AuditService) RoleService {
	return &roleService{db: db, roles: roles, auths: auths, admins: admins, audit: audit}
}

// validate 规范化输入并校验名称唯一与权限存在。selfID 为编辑中的角色 ID，新增时为 0。
func (s *roleService) validate(ctx context.Context, in RoleInput, selfID int64) (RoleInput, error) {
	out := RoleInput{Name: utils.NormalizeName(in.Name), AuthIDs: utils.DedupInt64s(in.AuthIDs)}

	verr := &ValidationError{}
	if out.Name == "" {
		verr.Add("name", "请输入角色名称")
	} else if existing, err := s.roles.GetByName(ctx, out.Name); err == nil {
		if existing.ID != selfID {
			verr.Add("name", "角色名称已经存在")
		}
	} else if !errors.Is(err, repositories.ErrRecordNotFound) {
		return out, err
	}

	found, err := s.auths.ExistingIDs(ctx, out.AuthIDs)
	if err != nil {
		return out, err
	}
	for _, id := range out.AuthIDs {
		if !found[id] {
			verr.Add("auths", fmt.Sprintf("权限 %d 不存在", id))
			break
		}
	}
	return out, verr.OrNil()
}

func (s *roleService) Create(ctx context.Context, actor Actor, in RoleInput) (*models.Role, error) {
	in, err := s.validate(ctx, in, 0)
	if err != nil {
		return nil, err
	}
	role := &models.Role{Name: in.Name}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.roles.WithTx(tx).Create(ctx, role, in.AuthIDs); err != nil {
			if isUniqueViolation(err) {
				return NewValidationError("name", "角色名称已经存在")
			}
			return err
		}
		return s.audit.WithTx(tx).RecordOperation(ctx, actor, "添加角色："+role.Name)
	})
	if err != nil {
		return nil, err
	}
	return role, nil
}

func (s *roleService) Get(ctx context.Context, id int64) (*models.Role, error) {
	role, err := s.roles.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return role, nil
}

func (s *roleService) List(ctx context.Context, page int) (repositories.Page[models.Role], error) {
	return s.roles.List(ctx, page)
}

func (s *roleService) All(ctx context.Context) ([]models.Role, error) {
	return s.roles.All(ctx)
}

func (s *roleService) Update(ctx context.Context, actor Actor, id int64, in RoleInput) (*models.Role, error) {
	role, err := s.roles.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	in, err = s.validate(ctx, in, role.ID)
	if err != nil {
		return nil, err
	}

	// 权限顺序未变时不重写 role_auths
	authIDs := in.AuthIDs
	if slices.Equal(role.AuthIDs(), authIDs) {
		authIDs = nil
	}
	role.Name = in.Name
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.roles.WithTx(tx).Update(ctx, role, authIDs); err != nil {
			if isUniqueViolation(err) {
				return NewValidationError("name", "角色名称已经存在")
			}
			return err
		}
		return s.audit.WithTx(tx).RecordOperation(ctx, actor, "修改角色："+role.Name)
	})
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

func (s *roleService) Delete(ctx context.Context, actor Actor, id int64) (*models.Role, error) {
	role, err := s.roles.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		n, err := s.admins.WithTx(tx).CountByRole(ctx, id)
		if err != nil {
			return err
		}
		if n > 0 {
			return ErrRoleInUse
		}
		if err := s.roles.WithTx(tx).Delete(ctx, id); err != nil {
			return mapNotFound(err)
		}
		return s.audit.WithTx(tx).RecordOperation(ctx, actor, "删除角色："+role.Name)
	})
	if err != nil {
		return nil, err
	}
	return role, nil
}
