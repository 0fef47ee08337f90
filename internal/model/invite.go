package model

import (
	"gorm.io/gorm"
)

// Invite 聊天邀请模型
// 对应数据库 invite 表
// 状态只允许 pending -> accepted / pending -> rejected 的单向迁移，
// 终态记录永不删除，保留为审计轨迹
type Invite struct {
	gorm.Model

	// Uuid 邀请唯一标识，格式：I + 13位时间戳随机字符串
	Uuid string `gorm:"column:uuid;uniqueIndex;type:char(20);not null;comment:邀请id"`

	// FromId 发起人用户 UUID
	FromId string `gorm:"column:from_id;index;type:char(20);not null;comment:发起人id"`

	// ToId 接收人用户 UUID，只有接收人可以处理邀请
	ToId string `gorm:"column:to_id;index;type:char(20);not null;comment:接收人id"`

	// ChatRoomId 目标聊天室 UUID
	// 创建时可选；接受无房间的邀请时由系统回填为新建房间的 id
	ChatRoomId string `gorm:"column:chat_room_id;type:char(20);comment:聊天室id"`

	// Status 邀请状态，取值见 pkg/enum/invite/invite_status_enum
	Status int8 `gorm:"column:status;not null;default:0;comment:状态，0.待处理，1.已接受，2.已拒绝"`
}

func (Invite) TableName() string {
	return "invite"
}
