// Package testutil 提供 Service 层测试用的内存数据层实现
// 所有实现均带锁，可用于并发场景
package testutil

import (
	"context"
	"sort"
	"sync"
	"time"

	"elearn_comm_server/internal/dao/mysql"
	"elearn_comm_server/internal/model"
	"elearn_comm_server/pkg/enum/invite/invite_status_enum"
	"elearn_comm_server/pkg/errorx"
)

func notFound() error {
	return errorx.New(errorx.CodeNotFound, "record not found")
}

// NewRepositories 构造全内存的 Repositories 聚合
func NewRepositories() *mysql.Repositories {
	return &mysql.Repositories{
		Session:     NewFakeSessionRepository(),
		AuthLog:     NewFakeAuthLogRepository(),
		Invite:      NewFakeInviteRepository(),
		Chat:        NewFakeChatRepository(),
		ChatMessage: NewFakeChatMessageRepository(),
		Message:     NewFakeMessageRepository(),
		Notify:      NewFakeNotificationRepository(),
		Saved:       NewFakeSavedRepository(),
		Forum:       NewFakeForumRepository(),
	}
}

// ==================== Session ====================

type FakeSessionRepository struct {
	mu       sync.Mutex
	sessions map[string]*model.Session
}

func NewFakeSessionRepository() *FakeSessionRepository {
	return &FakeSessionRepository{sessions: make(map[string]*model.Session)}
}

func (r *FakeSessionRepository) FindByUuid(uuid string) (*model.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[uuid]
	if !ok {
		return nil, notFound()
	}
	cp := *s
	return &cp, nil
}

func (r *FakeSessionRepository) Create(session *model.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *session
	r.sessions[session.Uuid] = &cp
	return nil
}

func (r *FakeSessionRepository) DeleteByUuid(uuid string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, uuid)
	return nil
}

func (r *FakeSessionRepository) DeleteExpired(now time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for uuid, s := range r.sessions {
		if now.After(s.ExpiresAt) {
			delete(r.sessions, uuid)
			n++
		}
	}
	return n, nil
}

// ==================== AuthLog ====================

type FakeAuthLogRepository struct {
	mu   sync.Mutex
	Logs []model.AuthLog
}

func NewFakeAuthLogRepository() *FakeAuthLogRepository {
	return &FakeAuthLogRepository{}
}

func (r *FakeAuthLogRepository) Create(log *model.AuthLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Logs = append(r.Logs, *log)
	return nil
}

// ==================== Invite ====================

type FakeInviteRepository struct {
	mu      sync.Mutex
	invites map[string]*model.Invite
}

func NewFakeInviteRepository() *FakeInviteRepository {
	return &FakeInviteRepository{invites: make(map[string]*model.Invite)}
}

func (r *FakeInviteRepository) FindByUuid(uuid string) (*model.Invite, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	inv, ok := r.invites[uuid]
	if !ok {
		return nil, notFound()
	}
	cp := *inv
	return &cp, nil
}

func (r *FakeInviteRepository) FindPendingByToId(toId string) ([]model.Invite, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var list []model.Invite
	for _, inv := range r.invites {
		if inv.ToId == toId && inv.Status == invite_status_enum.PENDING {
			list = append(list, *inv)
		}
	}
	return list, nil
}

func (r *FakeInviteRepository) Create(invite *model.Invite) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *invite
	if cp.CreatedAt.IsZero() {
		cp.CreatedAt = time.Now()
	}
	r.invites[invite.Uuid] = &cp
	*invite = cp
	return nil
}

func (r *FakeInviteRepository) ResolveIfPending(uuid string, status int8, chatRoomId string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	inv, ok := r.invites[uuid]
	if !ok || inv.Status != invite_status_enum.PENDING {
		return false, nil
	}
	inv.Status = status
	if chatRoomId != "" {
		inv.ChatRoomId = chatRoomId
	}
	return true, nil
}

// ==================== Chat ====================

type FakeChatRepository struct {
	mu    sync.Mutex
	chats map[string]*model.Chat
}

func NewFakeChatRepository() *FakeChatRepository {
	return &FakeChatRepository{chats: make(map[string]*model.Chat)}
}

func (r *FakeChatRepository) FindByUuid(uuid string) (*model.Chat, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.chats[uuid]
	if !ok {
		return nil, notFound()
	}
	cp := *c
	return &cp, nil
}

func (r *FakeChatRepository) FindByParticipantsKey(key string) (*model.Chat, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.chats {
		if c.ParticipantsKey == key {
			cp := *c
			return &cp, nil
		}
	}
	return nil, notFound()
}

func (r *FakeChatRepository) FindByParticipant(userId string) ([]model.Chat, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var list []model.Chat
	for _, c := range r.chats {
		if c.HasParticipant(userId) {
			list = append(list, *c)
		}
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].LastMessageAt.Time.After(list[j].LastMessageAt.Time)
	})
	return list, nil
}

func (r *FakeChatRepository) Create(chat *model.Chat) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *chat
	r.chats[chat.Uuid] = &cp
	return nil
}

func (r *FakeChatRepository) UpdateAppendState(uuid string, lastSeq int64, lastMessageAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.chats[uuid]
	if !ok {
		return notFound()
	}
	c.LastSeq = lastSeq
	c.LastMessageAt.Time = lastMessageAt
	c.LastMessageAt.Valid = true
	return nil
}

// ==================== ChatMessage ====================

type FakeChatMessageRepository struct {
	mu       sync.Mutex
	messages []model.ChatMessage
}

func NewFakeChatMessageRepository() *FakeChatMessageRepository {
	return &FakeChatMessageRepository{}
}

func (r *FakeChatMessageRepository) Create(message *model.ChatMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	// 模拟 (chat_id, seq) 唯一索引
	for _, m := range r.messages {
		if m.ChatId == message.ChatId && m.Seq == message.Seq {
			return errorx.New(errorx.CodeDBError, "duplicate seq")
		}
	}
	r.messages = append(r.messages, *message)
	return nil
}

func (r *FakeChatMessageRepository) FindByChatAfterSeq(chatId string, afterSeq int64, limit int) ([]model.ChatMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var list []model.ChatMessage
	for _, m := range r.messages {
		if m.ChatId == chatId && m.Seq > afterSeq {
			list = append(list, m)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Seq < list[j].Seq })
	if limit > 0 && len(list) > limit {
		list = list[:limit]
	}
	return list, nil
}

func (r *FakeChatMessageRepository) CountByChat(chatId string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, m := range r.messages {
		if m.ChatId == chatId {
			n++
		}
	}
	return n, nil
}

// ==================== Message ====================

type FakeMessageRepository struct {
	mu       sync.Mutex
	messages []model.Message
}

func NewFakeMessageRepository() *FakeMessageRepository {
	return &FakeMessageRepository{}
}

func (r *FakeMessageRepository) Create(message *model.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, *message)
	return nil
}

func (r *FakeMessageRepository) FindByReceiver(userId string) ([]model.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var list []model.Message
	// 新的在前
	for i := len(r.messages) - 1; i >= 0; i-- {
		m := r.messages[i]
		for _, recv := range m.ReceiverList() {
			if recv == userId {
				list = append(list, m)
				break
			}
		}
	}
	return list, nil
}

// ==================== Notification ====================

type FakeNotificationRepository struct {
	mu            sync.Mutex
	notifications []*model.Notification
	// FailCreates 前 N 次 Create 返回错误，用于重试测试
	FailCreates int
}

func NewFakeNotificationRepository() *FakeNotificationRepository {
	return &FakeNotificationRepository{}
}

func (r *FakeNotificationRepository) FindByUuid(uuid string) (*model.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, n := range r.notifications {
		if n.Uuid == uuid {
			cp := *n
			return &cp, nil
		}
	}
	return nil, notFound()
}

func (r *FakeNotificationRepository) FindUnreadByRecipient(recipientId string) ([]model.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var list []model.Notification
	for i := len(r.notifications) - 1; i >= 0; i-- {
		n := r.notifications[i]
		if n.RecipientId == recipientId && !n.Read {
			list = append(list, *n)
		}
	}
	return list, nil
}

func (r *FakeNotificationRepository) FindByRecipient(recipientId string) ([]model.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var list []model.Notification
	for i := len(r.notifications) - 1; i >= 0; i-- {
		n := r.notifications[i]
		if n.RecipientId == recipientId {
			list = append(list, *n)
		}
	}
	return list, nil
}

func (r *FakeNotificationRepository) Create(notification *model.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.FailCreates > 0 {
		r.FailCreates--
		return errorx.New(errorx.CodeDBError, "db unavailable")
	}
	cp := *notification
	if cp.CreatedAt.IsZero() {
		cp.CreatedAt = time.Now()
	}
	r.notifications = append(r.notifications, &cp)
	return nil
}

func (r *FakeNotificationRepository) MarkRead(uuid string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, n := range r.notifications {
		if n.Uuid == uuid {
			n.Read = true
			return nil
		}
	}
	return notFound()
}

// CountByRecipient 测试辅助：统计某接收者的通知条数
func (r *FakeNotificationRepository) CountByRecipient(recipientId string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	count := 0
	for _, n := range r.notifications {
		if n.RecipientId == recipientId {
			count++
		}
	}
	return count
}

// ==================== SavedConversation ====================

type FakeSavedRepository struct {
	mu    sync.Mutex
	saved map[string]*model.SavedConversation
}

func NewFakeSavedRepository() *FakeSavedRepository {
	return &FakeSavedRepository{saved: make(map[string]*model.SavedConversation)}
}

func (r *FakeSavedRepository) FindByUuid(uuid string) (*model.SavedConversation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.saved[uuid]
	if !ok {
		return nil, notFound()
	}
	cp := *s
	return &cp, nil
}

func (r *FakeSavedRepository) FindByUserId(userId string) ([]model.SavedConversation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var list []model.SavedConversation
	for _, s := range r.saved {
		if s.UserId == userId {
			list = append(list, *s)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].SavedAt.After(list[j].SavedAt) })
	return list, nil
}

func (r *FakeSavedRepository) Create(saved *model.SavedConversation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *saved
	r.saved[saved.Uuid] = &cp
	return nil
}

func (r *FakeSavedRepository) Update(saved *model.SavedConversation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.saved[saved.Uuid]; !ok {
		return notFound()
	}
	cp := *saved
	r.saved[saved.Uuid] = &cp
	return nil
}

func (r *FakeSavedRepository) DeleteByUuid(uuid string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.saved, uuid)
	return nil
}

// ==================== Forum ====================

type FakeForumRepository struct {
	mu      sync.Mutex
	threads map[string]*model.ForumThread
	replies []model.ForumReply
}

func NewFakeForumRepository() *FakeForumRepository {
	return &FakeForumRepository{threads: make(map[string]*model.ForumThread)}
}

func (r *FakeForumRepository) FindThreadByUuid(uuid string) (*model.ForumThread, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.threads[uuid]
	if !ok {
		return nil, notFound()
	}
	cp := *t
	return &cp, nil
}

func (r *FakeForumRepository) FindThreadsByCourse(courseId string) ([]model.ForumThread, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var list []model.ForumThread
	for _, t := range r.threads {
		if t.CourseId == courseId {
			list = append(list, *t)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
	return list, nil
}

func (r *FakeForumRepository) CreateThread(thread *model.ForumThread) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *thread
	if cp.CreatedAt.IsZero() {
		cp.CreatedAt = time.Now()
	}
	r.threads[thread.Uuid] = &cp
	*thread = cp
	return nil
}

func (r *FakeForumRepository) CreateReply(reply *model.ForumReply) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.replies = append(r.replies, *reply)
	return nil
}

func (r *FakeForumRepository) FindRepliesByThread(threadId string) ([]model.ForumReply, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var list []model.ForumReply
	for _, rep := range r.replies {
		if rep.ThreadId == threadId {
			list = append(list, rep)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].RepliedAt.Before(list[j].RepliedAt) })
	return list, nil
}

// ==================== UserResolver ====================

// FakeUserResolver 内存用户解析器
// MissingIds 中的用户视为不存在，其余全部存在
type FakeUserResolver struct {
	MissingIds []string
}

func (r *FakeUserResolver) Exists(ctx context.Context, userId string) (bool, error) {
	for _, id := range r.MissingIds {
		if id == userId {
			return false, nil
		}
	}
	return true, nil
}

func (r *FakeUserResolver) Missing(ctx context.Context, userIds []string) ([]string, error) {
	var missing []string
	for _, id := range userIds {
		if ok, _ := r.Exists(ctx, id); !ok {
			missing = append(missing, id)
		}
	}
	return missing, nil
}
