package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/machine_admin/internal/models"
	"github.com/machine_admin/internal/repositories"
	"github.com/machine_admin/pkg/utils"
)

// MachineInput 机器表单输入。Putontime 为空表示未填写上架日期
type MachineInput struct {
	Name          string
	URL           string
	CPU           string
	RAM           string
	IPMI          string
	MachineroomID int64
	PlatformID    int64
	Putontime     string
}

// MachineService 定义了机器服务的接口
type MachineService interface {
	Create(ctx context.Context, actor Actor, in MachineInput) (*models.Machine, error)
	Get(ctx context.Context, id int64) (*models.Machine, error)
	List(ctx context.Context, page int) (repositories.Page[models.Machine], error)
	Update(ctx context.Context, actor Actor, id int64, in MachineInput) (*models.Machine, error)
	Delete(ctx context.Context, actor Actor, id int64) (*models.Machine, error)
}

// machineService 是 MachineService 的实现
type machineService struct {
	db           *gorm.DB
	machines     repositories.MachineRepository
	machinerooms repositories.CatalogRepository
	platforms    repositories.CatalogRepository
	audit        AuditService
}

// NewMachineService 创建一个新的 machineService 实例
func NewMachineService(db *gorm.DB, machines repositories.MachineRepository, machinerooms, platforms repositories.CatalogRepository, audit AuditService) MachineService {
	return &machineService{db: db, machines: machines, machinerooms: machinerooms, platforms: platforms, audit: audit}
}

// build 校验输入并填充 machine 的可编辑字段
func (s *machineService) build(ctx context.Context, in MachineInput, m *models.Machine) error {
	verr := &ValidationError{}

	name := utils.NormalizeName(in.Name)
	if name == "" {
		verr.Add("name", "请输入机器名称")
	} else if existing, err := s.machines.GetByName(ctx, name); err == nil {
		if existing.ID != m.ID {
			verr.Add("name", "机器名称已经存在")
		}
	} else if !errors.Is(err, repositories.ErrRecordNotFound) {
		return err
	}

	if _, err := s.machinerooms.GetByID(ctx, in.MachineroomID); err != nil {
		if !errors.Is(err, repositories.ErrRecordNotFound) {
			return err
		}
		verr.Add("machineroom_id", "所属机房不存在")
	}
	if _, err := s.platforms.GetByID(ctx, in.PlatformID); err != nil {
		if !errors.Is(err, repositories.ErrRecordNotFound) {
			return err
		}
		verr.Add("platform_id", "所属平台不存在")
	}

	var putontime *time.Time
	if strings.TrimSpace(in.Putontime) != "" {
		t, err := utils.ParseDate(in.Putontime)
		if err != nil {
			verr.Add("putontime", err.Error())
		} else {
			putontime = &t
		}
	}
	if err := verr.OrNil(); err != nil {
		return err
	}

	m.Name = name
	m.URL = strings.TrimSpace(in.URL)
	m.CPU = strings.TrimSpace(in.CPU)
	m.RAM = strings.TrimSpace(in.RAM)
	m.IPMI = strings.TrimSpace(in.IPMI)
	m.MachineroomID = in.MachineroomID
	m.PlatformID = in.PlatformID
	m.Putontime = putontime
	return nil
}

func (s *machineService) Create(ctx context.Context, actor Actor, in MachineInput) (*models.Machine, error) {
	m := &models.Machine{}
	if err := s.build(ctx, in, m); err != nil {
		return nil, err
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.machines.WithTx(tx).Create(ctx, m); err != nil {
			if isUniqueViolation(err) {
				return NewValidationError("name", "机器名称已经存在")
			}
			return err
		}
		return s.audit.WithTx(tx).RecordOperation(ctx, actor, "添加机器："+m.Name+"信息")
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (s *machineService) Get(ctx context.Context, id int64) (*models.Machine, error) {
	m, err := s.machines.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return m, nil
}

func (s *machineService) List(ctx context.Context, page int) (repositories.Page[models.Machine], error) {
	return s.machines.List(ctx, page)
}

func (s *machineService) Update(ctx context.Context, actor Actor, id int64, in MachineInput) (*models.Machine, error) {
	m, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.build(ctx, in, m); err != nil {
		return nil, err
	}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.machines.WithTx(tx).Update(ctx, m); err != nil {
			if isUniqueViolation(err) {
				return NewValidationError("name", "机器名称已经存在")
			}
			return err
		}
		return s.audit.WithTx(tx).RecordOperation(ctx, actor, "修改机器："+m.Name+"的信息")
	})
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

func (s *machineService) Delete(ctx context.Context, actor Actor, id int64) (*models.Machine, error) {
	m, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.machines.WithTx(tx).Delete(ctx, id); err != nil {
			return mapNotFound(err)
		}
		return s.audit.WithTx(tx).RecordOperation(ctx, actor, "删除机器："+m.Name+"信息")
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}
