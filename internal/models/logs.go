package models

import "time"

// Adminlog 管理员登录日志，每次成功登录追加一条
type Adminlog struct {
	ID      int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	AdminID int64     `json:"adminId" gorm:"column:admin_id;not null;index"`
	IP      string    `json:"ip" gorm:"column:ip;size:64"`
	Addtime time.Time `json:"addtime" gorm:"column:addtime;not null;autoCreateTime;index"`

	Admin Admin `json:"admin" gorm:"foreignKey:AdminID"`
}

// TableName 指定 Adminlog 结构体对应的数据库表名
func (Adminlog) TableName() string {
	return "adminlogs"
}

// Oplog 管理员操作日志
type Oplog struct {
	ID      int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	AdminID int64     `json:"adminId" gorm:"column:admin_id;not null;index"`
	IP      string    `json:"ip" gorm:"column:ip;size:64"`
	Reason  string    `json:"reason" gorm:"column:reason;size:600"`
	Addtime time.Time `json:"addtime" gorm:"column:addtime;not null;autoCreateTime;index"`

	Admin Admin `json:"admin" gorm:"foreignKey:AdminID"`
}

// TableName 指定 Oplog 结构体对应的数据库表名
func (Oplog) TableName() string {
	return "oplogs"
}
