// Package chat 实现聊天室业务逻辑
// 消息日志只追加：时间戳服务端赋值，同房间内单调不减，
// 序号在房间追加锁内分配，(chat_id, seq) 唯一索引兜底
package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"elearn_comm_server/internal/config"
	"elearn_comm_server/internal/dao/mysql"
	"elearn_comm_server/internal/dto/request"
	"elearn_comm_server/internal/dto/respond"
	"elearn_comm_server/internal/infrastructure/mq"
	"elearn_comm_server/internal/infrastructure/userapi"
	"elearn_comm_server/internal/model"
	"elearn_comm_server/internal/service/notification"
	"elearn_comm_server/pkg/constants"
	"elearn_comm_server/pkg/enum/notification/notification_type_enum"
	"elearn_comm_server/pkg/errorx"
	"elearn_comm_server/pkg/util/random"
	"elearn_comm_server/pkg/util/snowflake"
)

// chatService 聊天室业务逻辑实现
type chatService struct {
	repos  *mysql.Repositories
	users  userapi.UserResolver
	notify notification.Dispatcher
	queue  mq.EventQueue // 为 nil 时跳过在线推送

	// roomLocks 房间追加锁，key 为 chatId
	roomLocks sync.Map
}

// NewChatService 构造函数，注入所有依赖
func NewChatService(repos *mysql.Repositories, users userapi.UserResolver, notify notification.Dispatcher, queue mq.EventQueue) *chatService {
	return &chatService{
		repos:  repos,
		users:  users,
		notify: notify,
		queue:  queue,
	}
}

// roomLock 获取房间追加锁
func (s *chatService) roomLock(chatId string) *sync.Mutex {
	lock, _ := s.roomLocks.LoadOrStore(chatId, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

// CreateChat 创建聊天室
// 成员集去重后落库；开启 dedupRooms 时相同成员集的房间只允许存在一个
func (s *chatService) CreateChat(creatorId string, req request.CreateChatRequest) (*respond.CreateChatRespond, error) {
	participants := uniqueParticipants(req.Participants)
	if len(participants) == 0 {
		return nil, errorx.New(errorx.CodeInvalidParam, "成员集不能为空")
	}

	missing, err := s.users.Missing(context.Background(), participants)
	if err != nil {
		zap.L().Error("校验房间成员失败", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	if len(missing) > 0 {
		return nil, errorx.Newf(errorx.CodeInvalidParam, "用户不存在: %s", strings.Join(missing, ","))
	}

	jsonStr, key := model.EncodeParticipants(participants)

	if config.GetConfig().ChatConfig.DedupRooms {
		if _, err := s.repos.Chat.FindByParticipantsKey(key); err == nil {
			return nil, errorx.New(errorx.CodeInvalidState, "相同成员集的房间已存在")
		} else if errorx.GetCode(err) != errorx.CodeNotFound {
			zap.L().Error("查询既有房间失败", zap.Error(err))
			return nil, errorx.ErrServerBusy
		}
	}

	chat := model.Chat{
		Uuid:            fmt.Sprintf("C%s", random.GetNowAndLenRandomString(11)),
		Participants:    jsonStr,
		ParticipantsKey: key,
	}
	if err := s.repos.Chat.Create(&chat); err != nil {
		zap.L().Error("创建房间失败", zap.String("creator_id", creatorId), zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	zap.L().Info("房间创建成功",
		zap.String("creator_id", creatorId),
		zap.String("chat_id", chat.Uuid),
		zap.Int("participants", len(participants)),
	)

	return &respond.CreateChatRespond{
		ChatId:       chat.Uuid,
		Participants: chat.ParticipantList(),
		CreatedAt:    chat.CreatedAt.Format("2006-01-02 15:04:05"),
	}, nil
}

// SendMessage 向房间追加消息
// 追加在房间锁内完成；通知与推送在锁外进行，失败不回滚消息
func (s *chatService) SendMessage(senderId string, req request.SendMessageRequest) (*respond.SendMessageRespond, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, errorx.New(errorx.CodeInvalidParam, "消息内容不能为空")
	}

	chat, err := s.repos.Chat.FindByUuid(req.ChatId)
	if err != nil {
		if errorx.GetCode(err) == errorx.CodeNotFound {
			return nil, errorx.New(errorx.CodeNotFound, "房间不存在")
		}
		zap.L().Error("查询房间失败", zap.String("chat_id", req.ChatId), zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	if !chat.HasParticipant(senderId) {
		return nil, errorx.New(errorx.CodeForbidden, "非房间成员不能发言")
	}

	lock := s.roomLock(chat.Uuid)
	lock.Lock()
	message, err := s.appendLocked(chat.Uuid, senderId, content)
	lock.Unlock()
	if err != nil {
		return nil, err
	}

	// 接收者为房间内除发送者外的全部成员
	receivers := make([]string, 0, len(chat.ParticipantList()))
	for _, p := range chat.ParticipantList() {
		if p != senderId {
			receivers = append(receivers, p)
		}
	}

	s.writeInboxRecord(message, receivers)
	s.fanOut(message, senderId, receivers)

	return &respond.SendMessageRespond{
		MessageId: strconv.FormatInt(message.Uuid, 10),
		ChatId:    message.ChatId,
		Seq:       message.Seq,
		SentAt:    message.SentAt.Format("2006-01-02 15:04:05.000"),
	}, nil
}

// appendLocked 在持有房间锁的前提下分配序号与时间戳并落库
// 时间戳取 max(now, 上一条时间戳)，保证同房间内单调不减
func (s *chatService) appendLocked(chatId, senderId, content string) (*model.ChatMessage, error) {
	chat, err := s.repos.Chat.FindByUuid(chatId)
	if err != nil {
		zap.L().Error("锁内重读房间失败", zap.String("chat_id", chatId), zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	sentAt := time.Now()
	if chat.LastMessageAt.Valid && sentAt.Before(chat.LastMessageAt.Time) {
		sentAt = chat.LastMessageAt.Time
	}

	message := model.ChatMessage{
		Uuid:     snowflake.GenerateID(),
		ChatId:   chatId,
		Seq:      chat.LastSeq + 1,
		SenderId: senderId,
		Content:  content,
		SentAt:   sentAt,
	}
	if err := s.repos.ChatMessage.Create(&message); err != nil {
		zap.L().Error("追加消息失败", zap.String("chat_id", chatId), zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	if err := s.repos.Chat.UpdateAppendState(chatId, message.Seq, sentAt); err != nil {
		zap.L().Error("更新房间追加状态失败", zap.String("chat_id", chatId), zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	return &message, nil
}

// writeInboxRecord 写收件箱冗余记录，失败只记错误
func (s *chatService) writeInboxRecord(message *model.ChatMessage, receivers []string) {
	receiversJson, err := json.Marshal(receivers)
	if err != nil {
		zap.L().Error(err.Error())
		return
	}
	record := model.Message{
		Uuid:      message.Uuid,
		ChatId:    message.ChatId,
		SenderId:  message.SenderId,
		Content:   message.Content,
		Receivers: string(receiversJson),
	}
	if err := s.repos.Message.Create(&record); err != nil {
		zap.L().Error("写收件箱记录失败",
			zap.Int64("message_uuid", message.Uuid),
			zap.Error(err),
		)
	}
}

// fanOut 向其他成员发通知并推送在线事件，尽力而为
func (s *chatService) fanOut(message *model.ChatMessage, senderId string, receivers []string) {
	text := fmt.Sprintf("用户%s在房间%s发来新消息", senderId, message.ChatId)
	for _, receiverId := range receivers {
		s.notify.Dispatch(receiverId, notification_type_enum.MESSAGE, text)
	}

	if s.queue == nil {
		return
	}
	payload, err := json.Marshal(respond.MessageListRespond{
		Seq:      message.Seq,
		SenderId: message.SenderId,
		Content:  message.Content,
		SentAt:   message.SentAt.Format("2006-01-02 15:04:05.000"),
	})
	if err != nil {
		zap.L().Error(err.Error())
		return
	}
	uuid := strconv.FormatInt(message.Uuid, 10)
	for _, receiverId := range receivers {
		event := &mq.PushEvent{
			Kind:        mq.EventChatMessage,
			RecipientId: receiverId,
			Uuid:        uuid,
			Payload:     payload,
		}
		if err := s.queue.Publish(context.Background(), event); err != nil {
			zap.L().Warn("消息推送入队失败",
				zap.String("recipient_id", receiverId),
				zap.Error(err),
			)
		}
	}
}

// GetMessageList 按序号升序分页拉取房间消息
// 游标为上一页最后一条的 seq，可随时中断后从上次位置续读
func (s *chatService) GetMessageList(userId string, req request.MessageListRequest) (*respond.MessageListWrapper, error) {
	chat, err := s.repos.Chat.FindByUuid(req.ChatId)
	if err != nil {
		if errorx.GetCode(err) == errorx.CodeNotFound {
			return nil, errorx.New(errorx.CodeNotFound, "房间不存在")
		}
		zap.L().Error("查询房间失败", zap.String("chat_id", req.ChatId), zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	if !chat.HasParticipant(userId) {
		return nil, errorx.New(errorx.CodeForbidden, "非房间成员不能查看消息")
	}

	limit := req.Limit
	if limit <= 0 {
		limit = config.GetConfig().ChatConfig.PageSize
	}
	if limit <= 0 {
		limit = constants.MESSAGE_PAGE_SIZE
	}

	messages, err := s.repos.ChatMessage.FindByChatAfterSeq(req.ChatId, req.AfterSeq, limit)
	if err != nil {
		zap.L().Error("查询房间消息失败", zap.String("chat_id", req.ChatId), zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	items := make([]respond.MessageListRespond, 0, len(messages))
	nextCursor := req.AfterSeq
	for _, m := range messages {
		items = append(items, respond.MessageListRespond{
			Seq:      m.Seq,
			SenderId: m.SenderId,
			Content:  m.Content,
			SentAt:   m.SentAt.Format("2006-01-02 15:04:05.000"),
		})
		nextCursor = m.Seq
	}
	return &respond.MessageListWrapper{Items: items, NextCursor: nextCursor}, nil
}

// GetUserChats 获取我参与的聊天室列表
func (s *chatService) GetUserChats(userId string) ([]respond.MyChatRespond, error) {
	chats, err := s.repos.Chat.FindByParticipant(userId)
	if err != nil {
		zap.L().Error("查询用户房间失败", zap.String("user_id", userId), zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	list := make([]respond.MyChatRespond, 0, len(chats))
	for i := range chats {
		item := respond.MyChatRespond{
			ChatId:       chats[i].Uuid,
			Participants: chats[i].ParticipantList(),
		}
		if chats[i].LastMessageAt.Valid {
			item.LastMessageAt = chats[i].LastMessageAt.Time.Format("2006-01-02 15:04:05")
		}
		list = append(list, item)
	}
	return list, nil
}

// GetInbox 获取发给我的消息
func (s *chatService) GetInbox(userId string) ([]respond.InboxMessageRespond, error) {
	messages, err := s.repos.Message.FindByReceiver(userId)
	if err != nil {
		zap.L().Error("查询收件箱失败", zap.String("user_id", userId), zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	list := make([]respond.InboxMessageRespond, 0, len(messages))
	for _, m := range messages {
		list = append(list, respond.InboxMessageRespond{
			MessageId: strconv.FormatInt(m.Uuid, 10),
			ChatId:    m.ChatId,
			SenderId:  m.SenderId,
			Content:   m.Content,
			CreatedAt: m.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
	return list, nil
}

// uniqueParticipants 去重并剔除空白成员，保持首次出现顺序
func uniqueParticipants(participants []string) []string {
	seen := make(map[string]struct{}, len(participants))
	result := make([]string, 0, len(participants))
	for _, p := range participants {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		result = append(result, p)
	}
	return result
}
