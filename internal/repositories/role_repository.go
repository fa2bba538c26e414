package repositories

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/machine_admin/internal/models"
)

// RoleRepository 定义了角色数据仓库的接口。
// 角色的权限以 role_auths 有序行保存，所有写操作需在同一事务中完成。
type RoleRepository interface {
	WithTx(tx *gorm.DB) RoleRepository
	Create(ctx context.Context, role *models.Role, authIDs []int64) error
	// GetByID 返回角色及按 position 排序的权限绑定
	GetByID(ctx context.Context, id int64) (*models.Role, error)
	GetByName(ctx context.Context, name string) (*models.Role, error)
	List(ctx context.Context, page int) (Page[models.Role], error)
	All(ctx context.Context) ([]models.Role, error)
	Update(ctx context.Context, role *models.Role, authIDs []int64) error
	ReplaceAuths(ctx context.Context, roleID int64, authIDs []int64) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}

// gormRoleRepository 是 RoleRepository 的 GORM 实现
type gormRoleRepository struct {
	db *gorm.DB
}

// NewGormRoleRepository 创建一个新的 gormRoleRepository 实例
func NewGormRoleRepository(db *gorm.DB) RoleRepository {
	return &gormRoleRepository{db: db}
}

func (r *gormRoleRepository) WithTx(tx *gorm.DB) RoleRepository {
	return &gormRoleRepository{db: tx}
}

func orderedAuths(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}

func (r *gormRoleRepository) Create(ctx context.Context, role *models.Role, authIDs []int64) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(role).Error; err != nil {
		return err
	}
	return r.insertAuths(ctx, role.ID, authIDs)
}

func (r *gormRoleRepository) insertAuths(ctx context.Context, roleID int64, authIDs []int64) error {
	if len(authIDs) == 0 {
		return nil
	}
	rows := make([]models.RoleAuth, 0, len(authIDs))
	for i, id := range authIDs {
		rows = append(rows, models.RoleAuth{RoleID: roleID, AuthID: id, Position: i})
	}
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(&rows).Error
}

func (r *gormRoleRepository) GetByID(ctx context.Context, id int64) (*models.Role, error) {
	var role models.Role
	if err := r.db.WithContext(ctx).Preload("Auths", orderedAuths).First(&role, id).Error; err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *gormRoleRepository) GetByName(ctx context.Context, name string) (*models.Role, error) {
	var role models.Role
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&role).Error; err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *gormRoleRepository) List(ctx context.Context, page int) (Page[models.Role], error) {
	return paginate[models.Role](ctx, r.db.Model(&models.Role{}), page, newestFirst, func(db *gorm.DB) *gorm.DB {
		return db.Preload("Auths", orderedAuths).Preload("Auths.Auth")
	})
}

func (r *gormRoleRepository) All(ctx context.Context) ([]models.Role, error) {
	var roles []models.Role
	err := r.db.WithContext(ctx).Order("id ASC").Find(&roles).Error
	return roles, err
}

func (r *gormRoleRepository) Update(ctx context.Context, role *models.Role, authIDs []int64) error {
	if err := r.db.WithContext(ctx).Model(&models.Role{}).Where("id = ?", role.ID).
		Update("name", role.Name).Error; err != nil {
		return err
	}
	if authIDs == nil {
		return nil
	}
	return r.ReplaceAuths(ctx, role.ID, authIDs)
}

func (r *gormRoleRepository) ReplaceAuths(ctx context.Context, roleID int64, authIDs []int64) error {
	if err := r.db.WithContext(ctx).Where("role_id = ?", roleID).Delete(&models.RoleAuth{}).Error; err != nil {
		return err
	}
	return r.insertAuths(ctx, roleID, authIDs)
}

func (r *gormRoleRepository) Delete(ctx context.Context, id int64) error {
	if err := r.db.WithContext(ctx).Where("role_id = ?", id).Delete(&models.RoleAuth{}).Error; err != nil {
		return err
	}
	res := r.db.WithContext(ctx).Delete(&models.Role{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (r *gormRoleRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Role{}).Count(&n).Error
	return n, err
}
