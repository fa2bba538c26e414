package models

import "time"

// Machineroom 机房
type Machineroom struct {
	ID      int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name    string    `json:"name" gorm:"column:name;uniqueIndex;not null;size:100"`
	Addtime time.Time `json:"addtime" gorm:"column:addtime;not null;autoCreateTime;index"`
}

// TableName 指定 Machineroom 结构体对应的数据库表名
func (Machineroom) TableName() string {
	return "machinerooms"
}

// Platform 平台
type Platform struct {
	ID      int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name    string    `json:"name" gorm:"column:name;uniqueIndex;not null;size:100"`
	Addtime time.Time `json:"addtime" gorm:"column:addtime;not null;autoCreateTime;index"`
}

// TableName 指定 Platform 结构体对应的数据库表名
func (Platform) TableName() string {
	return "platforms"
}

// Machine 对应于数据库中的 machines 表
type Machine struct {
	ID            int64      `json:"id" gorm:"primaryKey;autoIncrement"`
	Name          string     `json:"name" gorm:"column:name;uniqueIndex;not null;size:100"`
	URL           string     `json:"url" gorm:"column:url;size:255"`
	CPU           string     `json:"cpu" gorm:"column:cpu;size:100"`
	RAM           string     `json:"ram" gorm:"column:ram;size:100"`
	IPMI          string     `json:"ipmi" gorm:"column:ipmi;size:100"`
	MachineroomID int64      `json:"machineroomId" gorm:"column:machineroom_id;not null;index"`
	PlatformID    int64      `json:"platformId" gorm:"column:platform_id;not null;index"`
	Putontime     *time.Time `json:"putontime,omitempty" gorm:"column:putontime;type:date"` // 上架日期
	Addtime       time.Time  `json:"addtime" gorm:"column:addtime;not null;autoCreateTime;index"`

	Machineroom Machineroom `json:"machineroom" gorm:"foreignKey:MachineroomID;constraint:OnDelete:RESTRICT"`
	Platform    Platform    `json:"platform" gorm:"foreignKey:PlatformID;constraint:OnDelete:RESTRICT"`
}

// TableName 指定 Machine 结构体对应的数据库表名
func (Machine) TableName() string {
	return "machines"
}

// CatalogItem 机房/平台共用的只含名称的视图
type CatalogItem struct {
	ID      int64     `json:"id" gorm:"column:id;primaryKey"`
	Name    string    `json:"name" gorm:"column:name"`
	Addtime time.Time `json:"addtime" gorm:"column:addtime;autoCreateTime"`
}
