// Package notification 实现通知分发
// 通知是触发写入的旁路产物：写入失败重试后记日志，
// 绝不让通知失败回滚触发它的业务写入
package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"elearn_comm_server/internal/dao/mysql"
	"elearn_comm_server/internal/dto/request"
	"elearn_comm_server/internal/dto/respond"
	"elearn_comm_server/internal/infrastructure/mq"
	"elearn_comm_server/internal/model"
	"elearn_comm_server/pkg/constants"
	"elearn_comm_server/pkg/enum/notification/notification_type_enum"
	"elearn_comm_server/pkg/errorx"
	"elearn_comm_server/pkg/util/random"
)

// Dispatcher 通知分发接口，供其他 Service 触发通知
type Dispatcher interface {
	// Dispatch 向接收者投递一条通知，尽力而为，不返回错误
	Dispatch(recipientId, notifType, message string)
}

// notificationService 通知业务逻辑实现
type notificationService struct {
	repos  *mysql.Repositories
	queue  mq.EventQueue // 为 nil 时跳过在线推送
	runner func(func())  // 异步执行器，为 nil 时同步执行
}

// NewNotificationService 构造函数
// runner 通常注入 redis 缓存的 Worker Pool（SubmitTask）
func NewNotificationService(repos *mysql.Repositories, queue mq.EventQueue, runner func(func())) *notificationService {
	return &notificationService{
		repos:  repos,
		queue:  queue,
		runner: runner,
	}
}

// Dispatch 向接收者投递一条通知
func (s *notificationService) Dispatch(recipientId, notifType, message string) {
	task := func() {
		s.dispatchOnce(recipientId, notifType, message)
	}
	if s.runner != nil {
		s.runner(task)
		return
	}
	task()
}

// dispatchOnce 落库并推送一条通知，失败按次数重试
func (s *notificationService) dispatchOnce(recipientId, notifType, message string) {
	if !notification_type_enum.Valid(notifType) {
		zap.L().Error("非法通知类型", zap.String("type", notifType))
		return
	}

	notif := model.Notification{
		Uuid:        fmt.Sprintf("N%s", random.GetNowAndLenRandomString(11)),
		RecipientId: recipientId,
		Type:        notifType,
		Message:     message,
		Read:        false,
	}

	var err error
	for attempt := 0; attempt < constants.NOTIFY_MAX_RETRY; attempt++ {
		if err = s.repos.Notify.Create(&notif); err == nil {
			break
		}
		time.Sleep(constants.NOTIFY_RETRY_INTERVAL * time.Duration(attempt+1))
	}
	if err != nil {
		zap.L().Error("通知写入失败，已放弃",
			zap.String("recipient_id", recipientId),
			zap.String("type", notifType),
			zap.Error(err),
		)
		return
	}

	s.push(&notif)
}

// push 将通知推送给在线接收者
func (s *notificationService) push(notif *model.Notification) {
	if s.queue == nil {
		return
	}
	payload, err := json.Marshal(respond.NotificationRespond{
		NotificationId: notif.Uuid,
		Type:           notif.Type,
		Message:        notif.Message,
		Read:           notif.Read,
		CreatedAt:      notif.CreatedAt.Format("2006-01-02 15:04:05"),
	})
	if err != nil {
		zap.L().Error(err.Error())
		return
	}
	event := &mq.PushEvent{
		Kind:        mq.EventNotification,
		RecipientId: notif.RecipientId,
		Uuid:        notif.Uuid,
		Payload:     payload,
	}
	if err := s.queue.Publish(context.Background(), event); err != nil {
		zap.L().Warn("通知推送入队失败", zap.String("uuid", notif.Uuid), zap.Error(err))
	}
}

// GetUnreadList 获取未读通知，最新的在前
func (s *notificationService) GetUnreadList(userId string) ([]respond.NotificationRespond, error) {
	notifications, err := s.repos.Notify.FindUnreadByRecipient(userId)
	if err != nil {
		zap.L().Error("查询未读通知失败", zap.String("user_id", userId), zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	return buildNotificationList(notifications), nil
}

// GetAllList 获取全部通知，最新的在前
func (s *notificationService) GetAllList(userId string) ([]respond.NotificationRespond, error) {
	notifications, err := s.repos.Notify.FindByRecipient(userId)
	if err != nil {
		zap.L().Error("查询通知列表失败", zap.String("user_id", userId), zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	return buildNotificationList(notifications), nil
}

// MarkRead 标记通知已读
// 已读通知重复标记返回成功，读标记不会回退
func (s *notificationService) MarkRead(userId string, req request.MarkReadRequest) error {
	notif, err := s.repos.Notify.FindByUuid(req.NotificationId)
	if err != nil {
		if errorx.GetCode(err) == errorx.CodeNotFound {
			return errorx.New(errorx.CodeNotFound, "通知不存在")
		}
		zap.L().Error("查询通知失败", zap.String("notification_id", req.NotificationId), zap.Error(err))
		return errorx.ErrServerBusy
	}
	if notif.RecipientId != userId {
		return errorx.New(errorx.CodeForbidden, "只有接收者本人可以标记已读")
	}
	if notif.Read {
		return nil
	}
	if err := s.repos.Notify.MarkRead(req.NotificationId); err != nil {
		zap.L().Error("标记已读失败", zap.String("notification_id", req.NotificationId), zap.Error(err))
		return errorx.ErrServerBusy
	}
	return nil
}

// Announce 向指定用户列表广播公告
func (s *notificationService) Announce(req request.AnnounceRequest) error {
	for _, recipientId := range req.RecipientIds {
		s.Dispatch(recipientId, notification_type_enum.ANNOUNCEMENT, req.Message)
	}
	return nil
}

func buildNotificationList(notifications []model.Notification) []respond.NotificationRespond {
	list := make([]respond.NotificationRespond, 0, len(notifications))
	for _, n := range notifications {
		list = append(list, respond.NotificationRespond{
			NotificationId: n.Uuid,
			Type:           n.Type,
			Message:        n.Message,
			Read:           n.Read,
			CreatedAt:      n.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
	return list
}
