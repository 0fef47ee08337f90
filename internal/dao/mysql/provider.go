// Package mysql 提供 Repository 层聚合与构造
package mysql

import (
	"gorm.io/gorm"
)

// Repositories 聚合所有 Repository 实例
// 作为依赖注入的入口，Service 层通过此结构访问数据层
// 字段均为接口类型，测试中可直接以内存实现构造
type Repositories struct {
	Session     SessionRepository
	AuthLog     AuthLogRepository
	Invite      InviteRepository
	Chat        ChatRepository
	ChatMessage ChatMessageRepository
	Message     MessageRepository
	Notify      NotificationRepository
	Saved       SavedConversationRepository
	Forum       ForumRepository
}

// NewRepositories 创建所有 Repository 实例
// 接收 GORM 数据库实例，初始化并返回 Repositories 聚合
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Session:     NewSessionRepository(db),
		AuthLog:     NewAuthLogRepository(db),
		Invite:      NewInviteRepository(db),
		Chat:        NewChatRepository(db),
		ChatMessage: NewChatMessageRepository(db),
		Message:     NewMessageRepository(db),
		Notify:      NewNotificationRepository(db),
		Saved:       NewSavedConversationRepository(db),
		Forum:       NewForumRepository(db),
	}
}
