package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/machine_admin/internal/models"
	"github.com/machine_admin/internal/repositories"
	"github.com/machine_admin/pkg/utils"
)

// CatalogService 定义了机房/平台这类只有名称的目录服务接口
type CatalogService interface {
	// Label 目录的中文名称，例如"机房"
	Label() string
	Create(ctx context.Context, actor Actor, name string) (*models.CatalogItem, error)
	Get(ctx context.Context, id int64) (*models.CatalogItem, error)
	List(ctx context.Context, page int) (repositories.Page[models.CatalogItem], error)
	All(ctx context.Context) ([]models.CatalogItem, error)
	Rename(ctx context.Context, actor Actor, id int64, name string) (*models.CatalogItem, error)
	// Delete 删除目录项；仍被机器引用时返回 ErrCatalogInUse
	Delete(ctx context.Context, actor Actor, id int64) (*models.CatalogItem, error)
}

// catalogService 是 CatalogService 的实现
type catalogService struct {
	db       *gorm.DB
	repo     repositories.CatalogRepository
	machines repositories.MachineRepository
	label    string
	// column 机器表中引用该目录的列
	column string
	audit  AuditService
}

// NewMachineroomService 机房服务
func NewMachineroomService(db *gorm.DB, repo repositories.CatalogRepository, machines repositories.MachineRepository, audit AuditService) CatalogService {
	return &catalogService{db: db, repo: repo, machines: machines, label: "机房", column: "machineroom_id", audit: audit}
}

// NewPlatformService 平台服务
func NewPlatformService(db *gorm.DB, repo repositories.CatalogRepository, machines repositories.MachineRepository, audit AuditService) CatalogService {
	return &catalogService{db: db, repo: repo, machines: machines, label: "平台", column: "platform_id", audit: audit}
}

func (s *catalogService) Label() string { return s.label }

func (s *catalogService) validate(ctx context.Context, name string, selfID int64) (string, error) {
	name = utils.NormalizeName(name)
	if name == "" {
		return name, NewValidationError("name", "请输入"+s.label+"名称")
	}
	existing, err := s.repo.GetByName(ctx, name)
	if err == nil && existing.ID != selfID {
		return name, NewValidationError("name", s.label+"名称已经存在")
	}
	if err != nil && !errors.Is(err, repositories.ErrRecordNotFound) {
		return name, err
	}
	return name, nil
}

func (s *catalogService) Create(ctx context.Context, actor Actor, name string) (*models.CatalogItem, error) {
	name, err := s.validate(ctx, name, 0)
	if err != nil {
		return nil, err
	}
	item := &models.CatalogItem{Name: name}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).Create(ctx, item); err != nil {
			if isUniqueViolation(err) {
				return NewValidationError("name", s.label+"名称已经存在")
			}
			return err
		}
		return s.audit.WithTx(tx).RecordOperation(ctx, actor, "添加"+s.label+"："+name)
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (s *catalogService) Get(ctx context.Context, id int64) (*models.CatalogItem, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return item, nil
}

func (s *catalogService) List(ctx context.Context, page int) (repositories.Page[models.CatalogItem], error) {
	return s.repo.List(ctx, page)
}

func (s *catalogService) All(ctx context.Context) ([]models.CatalogItem, error) {
	return s.repo.All(ctx)
}

func (s *catalogService) Rename(ctx context.Context, actor Actor, id int64, name string) (*models.CatalogItem, error) {
	item, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	name, err = s.validate(ctx, name, item.ID)
	if err != nil {
		return nil, err
	}
	old := item.Name
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).Rename(ctx, id, name); err != nil {
			if isUniqueViolation(err) {
				return NewValidationError("name", s.label+"名称已经存在")
			}
			return err
		}
		return s.audit.WithTx(tx).RecordOperation(ctx, actor, "修改"+s.label+"："+old+"为"+name)
	})
	if err != nil {
		return nil, err
	}
	item.Name = name
	return item, nil
}

func (s *catalogService) Delete(ctx context.Context, actor Actor, id int64) (*models.CatalogItem, error) {
	item, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		n, err := s.machines.WithTx(tx).CountBy(ctx, s.column, id)
		if err != nil {
			return err
		}
		if n > 0 {
			return ErrCatalogInUse
		}
		if err := s.repo.WithTx(tx).Delete(ctx, id); err != nil {
			return mapNotFound(err)
		}
		return s.audit.WithTx(tx).RecordOperation(ctx, actor, "删除"+s.label+"："+item.Name)
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}
