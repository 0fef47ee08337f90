package model

import (
	"gorm.io/gorm"
)

// Notification 通知模型
// 对应数据库 notification 表
// 类型创建后不可变；唯一允许的变更是 read 从 false 置为 true，
// 不会自动回退；记录不删除（归档由外部系统负责）
type Notification struct {
	gorm.Model

	// Uuid 通知唯一标识，格式：N + 13位时间戳随机字符串
	Uuid string `gorm:"column:uuid;uniqueIndex;type:char(20);not null;comment:通知id"`

	// RecipientId 接收者用户 UUID，只有接收者本人可以标记已读
	RecipientId string `gorm:"column:recipient_id;index;type:char(20);not null;comment:接收者id"`

	// Type 通知类型，取值见 pkg/enum/notification/notification_type_enum
	Type string `gorm:"column:type;type:char(20);not null;comment:通知类型"`

	// Message 通知文本
	Message string `gorm:"column:message;type:varchar(500);not null;comment:通知内容"`

	// Read 已读标记，默认 false
	Read bool `gorm:"column:is_read;not null;default:false;comment:是否已读"`
}

func (Notification) TableName() string {
	return "notification"
}
