package repositories

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/machine_admin/internal/models"
)

// LogRepository 定义了登录日志与操作日志的数据仓库接口，两类日志都只追加
type LogRepository interface {
	WithTx(tx *gorm.DB) LogRepository
	CreateAdminlog(ctx context.Context, log *models.Adminlog) error
	CreateOplog(ctx context.Context, log *models.Oplog) error
	ListAdminlogs(ctx context.Context, page int) (Page[models.Adminlog], error)
	ListOplogs(ctx context.Context, page int) (Page[models.Oplog], error)
}

// gormLogRepository 是 LogRepository 的 GORM 实现
type gormLogRepository struct {
	db *gorm.DB
}

// NewGormLogRepository 创建一个新的 gormLogRepository 实例
func NewGormLogRepository(db *gorm.DB) LogRepository {
	return &gormLogRepository{db: db}
}

func (r *gormLogRepository) WithTx(tx *gorm.DB) LogRepository {
	return &gormLogRepository{db: tx}
}

func (r *gormLogRepository) CreateAdminlog(ctx context.Context, log *models.Adminlog) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(log).Error
}

func (r *gormLogRepository) CreateOplog(ctx context.Context, log *models.Oplog) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(log).Error
}

func (r *gormLogRepository) ListAdminlogs(ctx context.Context, page int) (Page[models.Adminlog], error) {
	return paginate[models.Adminlog](ctx, r.db.Model(&models.Adminlog{}), page, newestFirst, preload("Admin"))
}

func (r *gormLogRepository) ListOplogs(ctx context.Context, page int) (Page[models.Oplog], error) {
	return paginate[models.Oplog](ctx, r.db.Model(&models.Oplog{}), page, newestFirst, preload("Admin"))
}
