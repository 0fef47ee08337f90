// Package mysql 提供数据访问层的具体实现
// 本文件实现 ChatRepository 与 ChatMessageRepository 接口
package mysql

import (
	"fmt"
	"time"

	"elearn_comm_server/internal/model"

	"gorm.io/gorm"
)

// chatRepository ChatRepository 接口的实现
type chatRepository struct {
	db *gorm.DB
}

// NewChatRepository 创建 ChatRepository 实例
func NewChatRepository(db *gorm.DB) ChatRepository {
	return &chatRepository{db: db}
}

// FindByUuid 根据 UUID 查找聊天室
func (r *chatRepository) FindByUuid(uuid string) (*model.Chat, error) {
	var chat model.Chat
	if err := r.db.First(&chat, "uuid = ?", uuid).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询聊天室 uuid=%s", uuid)
	}
	return &chat, nil
}

// FindByParticipantsKey 根据成员集摘要查找聊天室
func (r *chatRepository) FindByParticipantsKey(key string) (*model.Chat, error) {
	var chat model.Chat
	if err := r.db.First(&chat, "participants_key = ?", key).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询聊天室 participants_key=%s", key)
	}
	return &chat, nil
}

// FindByParticipant 查找用户参与的所有聊天室
// participants 为 JSON 数组列，使用 JSON_CONTAINS 匹配成员
func (r *chatRepository) FindByParticipant(userId string) ([]model.Chat, error) {
	var chats []model.Chat
	if err := r.db.Where("JSON_CONTAINS(participants, ?)", fmt.Sprintf("%q", userId)).
		Order("last_message_at DESC").Find(&chats).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询用户聊天室 user_id=%s", userId)
	}
	return chats, nil
}

// Create 创建聊天室
func (r *chatRepository) Create(chat *model.Chat) error {
	if err := r.db.Create(chat).Error; err != nil {
		return wrapDBError(err, "创建聊天室")
	}
	return nil
}

// UpdateAppendState 提交一次追加后的房间状态
func (r *chatRepository) UpdateAppendState(uuid string, lastSeq int64, lastMessageAt time.Time) error {
	updates := map[string]interface{}{
		"last_seq":        lastSeq,
		"last_message_at": lastMessageAt,
	}
	if err := r.db.Model(&model.Chat{}).Where("uuid = ?", uuid).Updates(updates).Error; err != nil {
		return wrapDBErrorf(err, "更新房间追加状态 uuid=%s", uuid)
	}
	return nil
}

// chatMessageRepository ChatMessageRepository 接口的实现
type chatMessageRepository struct {
	db *gorm.DB
}

// NewChatMessageRepository 创建 ChatMessageRepository 实例
func NewChatMessageRepository(db *gorm.DB) ChatMessageRepository {
	return &chatMessageRepository{db: db}
}

// Create 追加一条房间消息
func (r *chatMessageRepository) Create(message *model.ChatMessage) error {
	if err := r.db.Create(message).Error; err != nil {
		return wrapDBError(err, "追加房间消息")
	}
	return nil
}

// FindByChatAfterSeq 按序号升序分页返回房间消息
func (r *chatMessageRepository) FindByChatAfterSeq(chatId string, afterSeq int64, limit int) ([]model.ChatMessage, error) {
	var messages []model.ChatMessage
	if err := r.db.Where("chat_id = ? AND seq > ?", chatId, afterSeq).
		Order("seq ASC").Limit(limit).Find(&messages).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询房间消息 chat_id=%s after=%d", chatId, afterSeq)
	}
	return messages, nil
}

// CountByChat 统计房间内消息条数
func (r *chatMessageRepository) CountByChat(chatId string) (int64, error) {
	var count int64
	if err := r.db.Model(&model.ChatMessage{}).Where("chat_id = ?", chatId).Count(&count).Error; err != nil {
		return 0, wrapDBErrorf(err, "统计房间消息 chat_id=%s", chatId)
	}
	return count, nil
}
