package repositories

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/machine_admin/internal/models"
)

// MachineRepository 定义了机器数据仓库的接口
type MachineRepository interface {
	WithTx(tx *gorm.DB) MachineRepository
	Create(ctx context.Context, machine *models.Machine) error
	GetByID(ctx context.Context, id int64) (*models.Machine, error)
	GetByName(ctx context.Context, name string) (*models.Machine, error)
	// List 分页并预加载机房与平台
	List(ctx context.Context, page int) (Page[models.Machine], error)
	Update(ctx context.Context, machine *models.Machine) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
	// CountBy 统计引用了指定机房/平台的机器数，column 取 machineroom_id 或 platform_id
	CountBy(ctx context.Context, column string, id int64) (int64, error)
}

// gormMachineRepository 是 MachineRepository 的 GORM 实现
type gormMachineRepository struct {
	db *gorm.DB
}

// NewGormMachineRepository 创建一个新的 gormMachineRepository 实例
func NewGormMachineRepository(db *gorm.DB) MachineRepository {
	return &gormMachineRepository{db: db}
}

func (r *gormMachineRepository) WithTx(tx *gorm.DB) MachineRepository {
	return &gormMachineRepository{db: tx}
}

func (r *gormMachineRepository) Create(ctx context.Context, machine *models.Machine) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(machine).Error
}

func (r *gormMachineRepository) GetByID(ctx context.Context, id int64) (*models.Machine, error) {
	var m models.Machine
	if err := r.db.WithContext(ctx).Preload("Machineroom").Preload("Platform").First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *gormMachineRepository) GetByName(ctx context.Context, name string) (*models.Machine, error) {
	var m models.Machine
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *gormMachineRepository) List(ctx context.Context, page int) (Page[models.Machine], error) {
	return paginate[models.Machine](ctx, r.db.Model(&models.Machine{}), page, newestFirst, preload("Machineroom", "Platform"))
}

func (r *gormMachineRepository) Update(ctx context.Context, machine *models.Machine) error {
	return r.db.WithContext(ctx).Model(&models.Machine{}).Where("id = ?", machine.ID).
		Updates(map[string]interface{}{
			"name":           machine.Name,
			"url":            machine.URL,
			"cpu":            machine.CPU,
			"ram":            machine.RAM,
			"ipmi":           machine.IPMI,
			"machineroom_id": machine.MachineroomID,
			"platform_id":    machine.PlatformID,
			"putontime":      machine.Putontime,
		}).Error
}

func (r *gormMachineRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&models.Machine{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (r *gormMachineRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Machine{}).Count(&n).Error
	return n, err
}

func (r *gormMachineRepository) CountBy(ctx context.Context, column string, id int64) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Machine{}).Where(clause.Eq{Column: clause.Column{Name: column}, Value: id}).Count(&n).Error
	return n, err
}
