package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/machine_admin/internal/models"
)

// AuthRepository 定义了权限规则数据仓库的接口
type AuthRepository interface {
	WithTx(tx *gorm.DB) AuthRepository
	Create(ctx context.Context, auth *models.Auth) error
	GetByID(ctx context.Context, id int64) (*models.Auth, error)
	GetByURL(ctx context.Context, url string) (*models.Auth, error)
	List(ctx context.Context, page int) (Page[models.Auth], error)
	All(ctx context.Context) ([]models.Auth, error)
	// ExistingIDs 返回 ids 中实际存在的权限 ID
	ExistingIDs(ctx context.Context, ids []int64) (map[int64]bool, error)
	// URLsByRole 返回角色绑定的全部权限规则 URL，按绑定顺序
	URLsByRole(ctx context.Context, roleID int64) ([]string, error)
	Update(ctx context.Context, auth *models.Auth) error
	// Delete 删除权限规则及其在各角色中的绑定
	Delete(ctx context.Context, id int64) error
}

// gormAuthRepository 是 AuthRepository 的 GORM 实现
type gormAuthRepository struct {
	db *gorm.DB
}

// NewGormAuthRepository 创建一个新的 gormAuthRepository 实例
func NewGormAuthRepository(db *gorm.DB) AuthRepository {
	return &gormAuthRepository{db: db}
}

func (r *gormAuthRepository) WithTx(tx *gorm.DB) AuthRepository {
	return &gormAuthRepository{db: tx}
}

func (r *gormAuthRepository) Create(ctx context.Context, auth *models.Auth) error {
	return r.db.WithContext(ctx).Create(auth).Error
}

func (r *gormAuthRepository) GetByID(ctx context.Context, id int64) (*models.Auth, error) {
	var auth models.Auth
	if err := r.db.WithContext(ctx).First(&auth, id).Error; err != nil {
		return nil, err
	}
	return &auth, nil
}

func (r *gormAuthRepository) GetByURL(ctx context.Context, url string) (*models.Auth, error) {
	var auth models.Auth
	if err := r.db.WithContext(ctx).Where("url = ?", url).First(&auth).Error; err != nil {
		return nil, err
	}
	return &auth, nil
}

func (r *gormAuthRepository) List(ctx context.Context, page int) (Page[models.Auth], error) {
	return paginate[models.Auth](ctx, r.db.Model(&models.Auth{}), page, newestFirst)
}

func (r *gormAuthRepository) All(ctx context.Context) ([]models.Auth, error) {
	var auths []models.Auth
	err := r.db.WithContext(ctx).Order("id ASC").Find(&auths).Error
	return auths, err
}

func (r *gormAuthRepository) ExistingIDs(ctx context.Context, ids []int64) (map[int64]bool, error) {
	found := make(map[int64]bool, len(ids))
	if len(ids) == 0 {
		return found, nil
	}
	var existing []int64
	if err := r.db.WithContext(ctx).Model(&models.Auth{}).Where("id IN ?", ids).Pluck("id", &existing).Error; err != nil {
		return nil, err
	}
	for _, id := range existing {
		found[id] = true
	}
	return found, nil
}

func (r *gormAuthRepository) URLsByRole(ctx context.Context, roleID int64) ([]string, error) {
	var urls []string
	err := r.db.WithContext(ctx).
		Table("role_auths").
		Joins("JOIN auths ON auths.id = role_auths.auth_id").
		Where("role_auths.role_id = ?", roleID).
		Order("role_auths.position ASC").
		Pluck("auths.url", &urls).Error
	return urls, err
}

func (r *gormAuthRepository) Update(ctx context.Context, auth *models.Auth) error {
	return r.db.WithContext(ctx).Model(&models.Auth{}).Where("id = ?", auth.ID).
		Updates(map[string]interface{}{"name": auth.Name, "url": auth.URL}).Error
}

func (r *gormAuthRepository) Delete(ctx context.Context, id int64) error {
	if err := r.db.WithContext(ctx).Where("auth_id = ?", id).Delete(&models.RoleAuth{}).Error; err != nil {
		return err
	}
	res := r.db.WithContext(ctx).Delete(&models.Auth{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}
