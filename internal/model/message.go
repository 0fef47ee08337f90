package model

import (
	"encoding/json"

	"gorm.io/gorm"
)

// Message 独立消息实体
// 对应数据库 message 表
// 与 chat_message 不同，这是收件箱/检索路径使用的冗余记录：
// 每次发送为接收方生成一条含 receivers 列表的记录，创建后不可变
type Message struct {
	gorm.Model

	// Uuid 消息雪花 ID，与对应的 chat_message 共用同一个值
	Uuid int64 `gorm:"column:uuid;uniqueIndex;type:bigint;not null;comment:消息雪花ID"`

	// ChatId 所属聊天室 UUID，发送者与所有接收者都必须是该房间成员
	ChatId string `gorm:"column:chat_id;index;type:char(20);not null;comment:聊天室id"`

	// SenderId 发送者用户 UUID
	SenderId string `gorm:"column:sender_id;index;type:char(20);not null;comment:发送者id"`

	// Content 消息内容
	Content string `gorm:"column:content;type:TEXT;not null;comment:消息内容"`

	// Receivers 接收者用户 UUID 列表，JSON 数组
	Receivers string `gorm:"column:receivers;type:TEXT;not null;comment:接收者列表(JSON)"`
}

func (Message) TableName() string {
	return "message"
}

// ReceiverList 反序列化接收者列表
func (m *Message) ReceiverList() []string {
	var list []string
	_ = json.Unmarshal([]byte(m.Receivers), &list)
	return list
}
