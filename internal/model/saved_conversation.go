package model

import (
	"time"

	"gorm.io/gorm"
)

// SavedConversation 会话收藏模型
// 对应数据库 saved_conversation 表
// 收藏目标为带标签的联合：target_type 指明 chat 或 forum_thread，
// target_id 为对应实体 UUID，结构上排除双空/双设
type SavedConversation struct {
	gorm.Model

	// Uuid 收藏唯一标识，格式：V + 13位时间戳随机字符串
	Uuid string `gorm:"column:uuid;uniqueIndex;type:char(20);not null;comment:收藏id"`

	// UserId 收藏所属用户 UUID，只有本人可更新或删除
	UserId string `gorm:"column:user_id;index;type:char(20);not null;comment:所属用户id"`

	// TargetType 目标类型，取值见 pkg/enum/saved/saved_target_enum
	TargetType string `gorm:"column:target_type;type:char(20);not null;comment:目标类型"`

	// TargetId 目标实体 UUID
	TargetId string `gorm:"column:target_id;index;type:char(20);not null;comment:目标id"`

	// SavedAt 收藏时间，更新收藏时刷新
	SavedAt time.Time `gorm:"column:saved_at;type:datetime;not null;comment:收藏时间"`
}

func (SavedConversation) TableName() string {
	return "saved_conversation"
}
