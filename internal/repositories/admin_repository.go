package repositories

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/machine_admin/internal/models"
)

// AdminRepository 定义了管理员数据仓库的接口
type AdminRepository interface {
	WithTx(tx *gorm.DB) AdminRepository
	Create(ctx context.Context, admin *models.Admin) error
	GetByID(ctx context.Context, id int64) (*models.Admin, error)
	GetByName(ctx context.Context, name string) (*models.Admin, error)
	// List 按添加时间倒序分页，并预加载角色
	List(ctx context.Context, page int) (Page[models.Admin], error)
	// UpdatePassword 更新密码哈希并递增会话版本，使已签发的会话全部失效
	UpdatePassword(ctx context.Context, id int64, hash string) error
	CountByRole(ctx context.Context, roleID int64) (int64, error)
	Count(ctx context.Context) (int64, error)
}

// gormAdminRepository 是 AdminRepository 的 GORM 实现
type gormAdminRepository struct {
	db *gorm.DB
}

// NewGormAdminRepository 创建一个新的 gormAdminRepository 实例
func NewGormAdminRepository(db *gorm.DB) AdminRepository {
	return &gormAdminRepository{db: db}
}

func (r *gormAdminRepository) WithTx(tx *gorm.DB) AdminRepository {
	return &gormAdminRepository{db: tx}
}

func (r *gormAdminRepository) Create(ctx context.Context, admin *models.Admin) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(admin).Error
}

func (r *gormAdminRepository) GetByID(ctx context.Context, id int64) (*models.Admin, error) {
	var admin models.Admin
	if err := r.db.WithContext(ctx).First(&admin, id).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *gormAdminRepository) GetByName(ctx context.Context, name string) (*models.Admin, error) {
	var admin models.Admin
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *gormAdminRepository) List(ctx context.Context, page int) (Page[models.Admin], error) {
	return paginate[models.Admin](ctx, r.db.Model(&models.Admin{}), page, newestFirst, preload("Role"))
}

func (r *gormAdminRepository) UpdatePassword(ctx context.Context, id int64, hash string) error {
	res := r.db.WithContext(ctx).Model(&models.Admin{}).Where("id = ?", id).Updates(map[string]interface{}{
		"pwd":             hash,
		"session_version": gorm.Expr("session_version + 1"),
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (r *gormAdminRepository) CountByRole(ctx context.Context, roleID int64) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Admin{}).Where("role_id = ?", roleID).Count(&n).Error
	return n, err
}

func (r *gormAdminRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Admin{}).Count(&n).Error
	return n, err
}
