package models

import "time"

// Auth 权限规则，URL 与路由模板逐字比较（例如 /machine/list/:page/）
type Auth struct {
	ID      int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name    string    `json:"name" gorm:"column:name;not null;size:100"`
	URL     string    `json:"url" gorm:"column:url;uniqueIndex;not null;size:255"`
	Addtime time.Time `json:"addtime" gorm:"column:addtime;not null;autoCreateTime;index"`
}

// TableName 指定 Auth 结构体对应的数据库表名
func (Auth) TableName() string {
	return "auths"
}
