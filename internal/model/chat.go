// Package model 定义数据库实体模型
// 本文件定义聊天室模型；消息日志见 chat_message.go
package model

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"sort"

	"gorm.io/gorm"
)

// Chat 聊天室模型
// 对应数据库 chat 表
// 成员集在创建时确定且不可变更；消息日志只追加，不回改不截断
type Chat struct {
	gorm.Model

	// Uuid 聊天室唯一标识，格式：C + 13位时间戳随机字符串
	Uuid string `gorm:"column:uuid;uniqueIndex;type:char(20);not null;comment:聊天室id"`

	// Participants 成员用户 UUID 列表，JSON 数组，创建后不可变
	Participants string `gorm:"column:participants;type:TEXT;not null;comment:成员集(JSON)"`

	// ParticipantsKey 排序后成员集的 SHA-256 摘要
	// 开启 dedupRooms 时用于查找相同成员集的既有房间
	ParticipantsKey string `gorm:"column:participants_key;index;type:char(64);not null;comment:成员集摘要"`

	// LastSeq 房间内已分配的最大消息序号
	// 仅在持有房间追加锁时读写，保证同一序号至多一条已提交消息
	LastSeq int64 `gorm:"column:last_seq;not null;default:0;comment:最大消息序号"`

	// LastMessageAt 最近一条消息的服务端时间戳，用于会话列表排序
	LastMessageAt sql.NullTime `gorm:"column:last_message_at;type:datetime;comment:最近消息时间"`
}

func (Chat) TableName() string {
	return "chat"
}

// ParticipantList 反序列化成员集
func (c *Chat) ParticipantList() []string {
	var list []string
	_ = json.Unmarshal([]byte(c.Participants), &list)
	return list
}

// HasParticipant 判断用户是否为房间成员
func (c *Chat) HasParticipant(userId string) bool {
	for _, p := range c.ParticipantList() {
		if p == userId {
			return true
		}
	}
	return false
}

// EncodeParticipants 序列化成员集并计算去重摘要
// 摘要对排序后的 JSON 编码计算，与传入顺序无关；
// JSON 编码自带定界，成员 id 含分隔符也不会与其他成员集撞摘要
func EncodeParticipants(participants []string) (jsonStr string, key string) {
	sorted := make([]string, len(participants))
	copy(sorted, participants)
	sort.Strings(sorted)

	data, _ := json.Marshal(sorted)
	sum := sha256.Sum256(data)
	return string(data), hex.EncodeToString(sum[:])
}
