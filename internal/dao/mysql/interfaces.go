// Package mysql 定义数据访问层接口和聚合结构
// 采用 Repository 模式将数据访问逻辑与业务逻辑分离
// 所有 Repository 接口在此文件定义，具体实现在各自的文件中
package mysql

import (
	"time"

	"elearn_comm_server/internal/model"
)

// ==================== Repository 接口定义 ====================

// SessionRepository 认证会话数据访问接口
type SessionRepository interface {
	// FindByUuid 根据会话令牌查找会话（软删除的会话视为不存在）
	FindByUuid(uuid string) (*model.Session, error)
	// Create 创建新会话
	Create(session *model.Session) error
	// DeleteByUuid 软删除会话；目标不存在时不报错（撤销操作幂等）
	DeleteByUuid(uuid string) error
	// DeleteExpired 批量软删除过期会话，返回删除条数
	DeleteExpired(now time.Time) (int64, error)
}

// AuthLogRepository 认证审计日志数据访问接口，只追加
type AuthLogRepository interface {
	Create(log *model.AuthLog) error
}

// InviteRepository 邀请数据访问接口
type InviteRepository interface {
	// FindByUuid 根据 UUID 查找邀请
	FindByUuid(uuid string) (*model.Invite, error)
	// FindPendingByToId 查找接收人的待处理邀请列表
	FindPendingByToId(toId string) ([]model.Invite, error)
	// Create 创建新邀请
	Create(invite *model.Invite) error
	// ResolveIfPending 条件更新：仅当邀请仍为 pending 时写入终态和房间id
	// 返回 false 表示邀请已被处理（compare-and-set 落败）
	ResolveIfPending(uuid string, status int8, chatRoomId string) (bool, error)
}

// ChatRepository 聊天室数据访问接口
type ChatRepository interface {
	// FindByUuid 根据 UUID 查找聊天室
	FindByUuid(uuid string) (*model.Chat, error)
	// FindByParticipantsKey 根据成员集摘要查找聊天室（房间去重用）
	FindByParticipantsKey(key string) (*model.Chat, error)
	// FindByParticipant 查找用户参与的所有聊天室
	FindByParticipant(userId string) ([]model.Chat, error)
	// Create 创建新聊天室
	Create(chat *model.Chat) error
	// UpdateAppendState 提交一次追加后的房间状态（last_seq、last_message_at）
	UpdateAppendState(uuid string, lastSeq int64, lastMessageAt time.Time) error
}

// ChatMessageRepository 房间消息日志数据访问接口
// 日志只追加：没有更新和删除方法
type ChatMessageRepository interface {
	// Create 追加一条消息；(chat_id, seq) 唯一索引保证同一位置至多一条
	Create(message *model.ChatMessage) error
	// FindByChatAfterSeq 按序号升序返回 seq > afterSeq 的消息，最多 limit 条
	FindByChatAfterSeq(chatId string, afterSeq int64, limit int) ([]model.ChatMessage, error)
	// CountByChat 统计房间内消息条数
	CountByChat(chatId string) (int64, error)
}

// MessageRepository 独立消息（收件箱路径）数据访问接口
type MessageRepository interface {
	Create(message *model.Message) error
	// FindByReceiver 查找发给指定用户的消息，按创建时间倒序
	FindByReceiver(userId string) ([]model.Message, error)
}

// NotificationRepository 通知数据访问接口
type NotificationRepository interface {
	FindByUuid(uuid string) (*model.Notification, error)
	// FindUnreadByRecipient 查找接收者的未读通知，最新的在前
	FindUnreadByRecipient(recipientId string) ([]model.Notification, error)
	// FindByRecipient 查找接收者的全部通知，最新的在前
	FindByRecipient(recipientId string) ([]model.Notification, error)
	Create(notification *model.Notification) error
	// MarkRead 将通知置为已读；重复置位不报错
	MarkRead(uuid string) error
}

// SavedConversationRepository 会话收藏数据访问接口
type SavedConversationRepository interface {
	FindByUuid(uuid string) (*model.SavedConversation, error)
	// FindByUserId 查找用户的收藏列表，按 saved_at 倒序
	FindByUserId(userId string) ([]model.SavedConversation, error)
	Create(saved *model.SavedConversation) error
	Update(saved *model.SavedConversation) error
	DeleteByUuid(uuid string) error
}

// ForumRepository 论坛数据访问接口
type ForumRepository interface {
	FindThreadByUuid(uuid string) (*model.ForumThread, error)
	FindThreadsByCourse(courseId string) ([]model.ForumThread, error)
	CreateThread(thread *model.ForumThread) error
	// CreateReply 追加一条回复，只追加不修改
	CreateReply(reply *model.ForumReply) error
	// FindRepliesByThread 按回复时间升序返回帖子的全部回复
	FindRepliesByThread(threadId string) ([]model.ForumReply, error)
}
