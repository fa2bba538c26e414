package models

import (
	"time"
)

// Admin 对应于数据库中的 admins 表
type Admin struct {
	ID             int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name           string    `json:"name" gorm:"column:name;uniqueIndex;not null;size:100"`
	Pwd            string    `json:"-" gorm:"column:pwd;not null;size:255"` // bcrypt 哈希，不对外暴露
	RoleID         int64     `json:"roleId" gorm:"column:role_id;not null;index"`
	IsSuper        bool      `json:"isSuper" gorm:"column:is_super;not null;default:false"`
	Addtime        time.Time `json:"addtime" gorm:"column:addtime;not null;autoCreateTime;index"`
	// SessionVersion 每次修改密码递增，签发时写入会话，不一致的会话视为失效
	SessionVersion int       `json:"-" gorm:"column:session_version;not null;default:0"`

	Role Role `json:"role" gorm:"foreignKey:RoleID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

// TableName 指定 Admin 结构体对应的数据库表名
func (Admin) TableName() string {
	return "admins"
}
