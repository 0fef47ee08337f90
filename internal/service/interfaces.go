// Package service 定义业务层接口
// 本文件定义所有 Service 接口，供 Handler 层调用
// 接口设计遵循依赖倒置原则，便于测试和解耦
package service

import (
	"elearn_comm_server/internal/dto/request"
	"elearn_comm_server/internal/dto/respond"
)

// SessionService 认证会话业务接口
// 处理会话的创建、校验、撤销与过期清理
type SessionService interface {
	// CreateSession 创建会话并签发令牌，记录 LOGIN 审计日志
	CreateSession(req request.CreateSessionRequest, ip, userAgent string) (*respond.CreateSessionRespond, error)
	// ValidateSession 校验会话，过期返回 CodeExpired，不存在返回 CodeNotFound
	ValidateSession(sessionId string) (*respond.ValidateSessionRespond, error)
	// RevokeSession 撤销会话（幂等），记录 LOGOUT 审计日志
	RevokeSession(sessionId string) error
	// SweepExpired 清理过期会话，返回清理条数
	SweepExpired() (int64, error)
}

// InviteService 聊天邀请业务接口
// 状态机：pending -> accepted / pending -> rejected，终态不可变
type InviteService interface {
	// CreateInvite 发起邀请并通知接收人
	CreateInvite(fromId string, req request.CreateInviteRequest) (*respond.InviteRespond, error)
	// RespondInvite 接收人应答邀请；接受无房间的邀请时自动建房
	RespondInvite(userId string, req request.RespondInviteRequest) (*respond.RespondInviteRespond, error)
	// GetPendingInvites 获取我的待处理邀请列表
	GetPendingInvites(userId string) ([]respond.InviteRespond, error)
}

// ChatService 聊天室业务接口
// 处理房间创建、消息追加与读取
type ChatService interface {
	// CreateChat 创建聊天室
	CreateChat(creatorId string, req request.CreateChatRequest) (*respond.CreateChatRespond, error)
	// SendMessage 向房间追加消息并通知其他成员
	SendMessage(senderId string, req request.SendMessageRequest) (*respond.SendMessageRespond, error)
	// GetMessageList 按序号升序分页拉取房间消息，仅房间成员可读
	GetMessageList(userId string, req request.MessageListRequest) (*respond.MessageListWrapper, error)
	// GetUserChats 获取我参与的聊天室列表
	GetUserChats(userId string) ([]respond.MyChatRespond, error)
	// GetInbox 获取发给我的消息（收件箱路径）
	GetInbox(userId string) ([]respond.InboxMessageRespond, error)
}

// NotificationService 通知业务接口
type NotificationService interface {
	// GetUnreadList 获取未读通知，最新的在前
	GetUnreadList(userId string) ([]respond.NotificationRespond, error)
	// GetAllList 获取全部通知，最新的在前
	GetAllList(userId string) ([]respond.NotificationRespond, error)
	// MarkRead 标记通知已读；仅接收者本人可操作，重复标记幂等
	MarkRead(userId string, req request.MarkReadRequest) error
	// Announce 向指定用户列表广播公告通知
	Announce(req request.AnnounceRequest) error
}

// SavedService 会话收藏业务接口
type SavedService interface {
	// Save 收藏一个聊天室或讨论帖
	Save(userId string, req request.SaveConversationRequest) (*respond.SavedConversationRespond, error)
	// Update 更新收藏指向并刷新收藏时间，仅本人可操作
	Update(userId string, req request.UpdateSavedRequest) (*respond.SavedConversationRespond, error)
	// Delete 删除收藏，仅本人可操作
	Delete(userId string, req request.DeleteSavedRequest) error
	// GetList 获取我的收藏，按收藏时间倒序
	GetList(userId string) ([]respond.SavedConversationRespond, error)
}

// ForumService 课程论坛业务接口
type ForumService interface {
	// CreateThread 创建讨论帖
	CreateThread(userId string, req request.CreateThreadRequest) (*respond.ForumThreadRespond, error)
	// Reply 回复讨论帖并通知发帖人
	Reply(userId string, req request.ReplyThreadRequest) error
	// GetThread 获取讨论帖详情（含全部回复）
	GetThread(threadId string) (*respond.ForumThreadRespond, error)
	// ListByCourse 获取课程下的讨论帖列表
	ListByCourse(courseId string) ([]respond.ThreadListRespond, error)
}
