package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/machine_admin/internal/models"
)

// CatalogRepository 机房、平台这类只含名称的字典表共用的仓库接口
type CatalogRepository interface {
	WithTx(tx *gorm.DB) CatalogRepository
	Table() string
	Create(ctx context.Context, item *models.CatalogItem) error
	GetByID(ctx context.Context, id int64) (*models.CatalogItem, error)
	GetByName(ctx context.Context, name string) (*models.CatalogItem, error)
	List(ctx context.Context, page int) (Page[models.CatalogItem], error)
	All(ctx context.Context) ([]models.CatalogItem, error)
	Rename(ctx context.Context, id int64, name string) error
	Delete(ctx context.Context, id int64) error
}

// gormCatalogRepository 通过表名区分机房与平台
type gormCatalogRepository struct {
	db    *gorm.DB
	table string
}

// NewGormMachineroomRepository 机房仓库
func NewGormMachineroomRepository(db *gorm.DB) CatalogRepository {
	return &gormCatalogRepository{db: db, table: models.Machineroom{}.TableName()}
}

// NewGormPlatformRepository 平台仓库
func NewGormPlatformRepository(db *gorm.DB) CatalogRepository {
	return &gormCatalogRepository{db: db, table: models.Platform{}.TableName()}
}

func (r *gormCatalogRepository) WithTx(tx *gorm.DB) CatalogRepository {
	return &gormCatalogRepository{db: tx, table: r.table}
}

func (r *gormCatalogRepository) Table() string { return r.table }

func (r *gormCatalogRepository) Create(ctx context.Context, item *models.CatalogItem) error {
	return r.db.WithContext(ctx).Table(r.table).Create(item).Error
}

func (r *gormCatalogRepository) GetByID(ctx context.Context, id int64) (*models.CatalogItem, error) {
	var item models.CatalogItem
	if err := r.db.WithContext(ctx).Table(r.table).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *gormCatalogRepository) GetByName(ctx context.Context, name string) (*models.CatalogItem, error) {
	var item models.CatalogItem
	if err := r.db.WithContext(ctx).Table(r.table).Where("name = ?", name).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *gormCatalogRepository) List(ctx context.Context, page int) (Page[models.CatalogItem], error) {
	return paginate[models.CatalogItem](ctx, r.db.Table(r.table), page, newestFirst)
}

func (r *gormCatalogRepository) All(ctx context.Context) ([]models.CatalogItem, error) {
	var items []models.CatalogItem
	err := r.db.WithContext(ctx).Table(r.table).Order("id ASC").Find(&items).Error
	return items, err
}

func (r *gormCatalogRepository) Rename(ctx context.Context, id int64, name string) error {
	return r.db.WithContext(ctx).Table(r.table).Where("id = ?", id).Update("name", name).Error
}

func (r *gormCatalogRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Table(r.table).Where("id = ?", id).Delete(&models.CatalogItem{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}
