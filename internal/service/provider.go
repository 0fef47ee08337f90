// Package service 提供业务逻辑层
// 本文件实现 Service 层的依赖注入和聚合
package service

import (
	"elearn_comm_server/internal/dao/mysql"
	myredis "elearn_comm_server/internal/dao/redis"
	"elearn_comm_server/internal/infrastructure/mq"
	"elearn_comm_server/internal/infrastructure/userapi"
	"elearn_comm_server/internal/service/chat"
	"elearn_comm_server/internal/service/forum"
	"elearn_comm_server/internal/service/invite"
	"elearn_comm_server/internal/service/notification"
	"elearn_comm_server/internal/service/saved"
	"elearn_comm_server/internal/service/session"
)

// Services 聚合所有 Service 实例
// 作为依赖注入的入口，Handler 层通过此结构访问各个 Service
type Services struct {
	Session      SessionService
	Invite       InviteService
	Chat         ChatService
	Notification NotificationService
	Saved        SavedService
	Forum        ForumService
}

// NewServices 创建并注入所有 Service 实例
// cache 和 queue 允许为 nil（测试场景），此时通知同步执行、跳过在线推送
func NewServices(repos *mysql.Repositories, cache myredis.AsyncCacheService, users userapi.UserResolver, queue mq.EventQueue) *Services {
	// 通知分发复用缓存的 Worker Pool 作为异步执行器
	var runner func(func())
	if cache != nil {
		runner = cache.SubmitTask
	}

	notifySvc := notification.NewNotificationService(repos, queue, runner)
	sessionSvc := session.NewSessionService(repos, cache)
	inviteSvc := invite.NewInviteService(repos, users, notifySvc)
	chatSvc := chat.NewChatService(repos, users, notifySvc, queue)
	savedSvc := saved.NewSavedService(repos)
	forumSvc := forum.NewForumService(repos, notifySvc)

	return &Services{
		Session:      sessionSvc,
		Invite:       inviteSvc,
		Chat:         chatSvc,
		Notification: notifySvc,
		Saved:        savedSvc,
		Forum:        forumSvc,
	}
}

// Svc 全局 Services 实例
// Handler 层通过 service.Svc.Chat.SendMessage() 等方式调用
var Svc *Services

// InitServices 初始化全局 Services 实例
// 应在 main.go 中调用，在 Repository、Redis、MQ 初始化之后
func InitServices(repos *mysql.Repositories, cache myredis.AsyncCacheService, users userapi.UserResolver, queue mq.EventQueue) {
	Svc = NewServices(repos, cache, users, queue)
}
