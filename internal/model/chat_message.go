package model

import (
	"time"

	"gorm.io/gorm"
)

// ChatMessage 聊天室内嵌消息日志
// 对应数据库 chat_message 表
// 以 (chat_id, seq) 唯一定位一条消息；seq 在房间追加锁内分配，
// 时间戳服务端赋值且同房间内单调不减，同刻消息由 seq 决定先后
type ChatMessage struct {
	gorm.Model

	// Uuid 消息雪花 ID
	Uuid int64 `gorm:"column:uuid;uniqueIndex;type:bigint;not null;comment:消息雪花ID"`

	// ChatId 所属聊天室 UUID
	ChatId string `gorm:"column:chat_id;index:idx_chat_seq,priority:1;type:char(20);not null;comment:聊天室id"`

	// Seq 房间内追加序号，从 1 开始
	Seq int64 `gorm:"column:seq;index:idx_chat_seq,priority:2,unique;not null;comment:房间内序号"`

	// SenderId 发送者用户 UUID，必须是房间成员
	SenderId string `gorm:"column:sender_id;index;type:char(20);not null;comment:发送者id"`

	// Content 消息文本内容，入库后不可变
	Content string `gorm:"column:content;type:TEXT;not null;comment:消息内容"`

	// SentAt 服务端赋值的发送时间
	SentAt time.Time `gorm:"column:sent_at;type:datetime(3);not null;comment:发送时间"`
}

func (ChatMessage) TableName() string {
	return "chat_message"
}
