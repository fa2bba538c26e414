package models

import "time"

// Role 对应于数据库中的 roles 表，权限列表保存在 role_auths 中
type Role struct {
	ID      int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name    string    `json:"name" gorm:"column:name;uniqueIndex;not null;size:100"`
	Addtime time.Time `json:"addtime" gorm:"column:addtime;not null;autoCreateTime;index"`

	Auths []RoleAuth `json:"auths" gorm:"foreignKey:RoleID;constraint:OnDelete:CASCADE"`
}

// TableName 指定 Role 结构体对应的数据库表名
func (Role) TableName() string {
	return "roles"
}

// AuthIDs 按 position 顺序返回权限 ID（调用方负责按 position 预加载）
func (r Role) AuthIDs() []int64 {
	ids := make([]int64, 0, len(r.Auths))
	for _, ra := range r.Auths {
		ids = append(ids, ra.AuthID)
	}
	return ids
}

// RoleAuth 角色-权限绑定，Position 保留表单提交时的顺序
type RoleAuth struct {
	RoleID   int64 `json:"roleId" gorm:"column:role_id;primaryKey;autoIncrement:false"`
	AuthID   int64 `json:"authId" gorm:"column:auth_id;primaryKey;autoIncrement:false;index"`
	Position int   `json:"position" gorm:"column:position;not null;default:0"`

	Auth Auth `json:"-" gorm:"foreignKey:AuthID;constraint:OnDelete:CASCADE"`
}

// TableName 指定 RoleAuth 结构体对应的数据库表名
func (RoleAuth) TableName() string {
	return "role_auths"
}
