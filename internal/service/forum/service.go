// Package forum 实现课程论坛业务逻辑
// 回复只追加；他人回复会通知发帖人
package forum

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"elearn_comm_server/internal/dao/mysql"
	"elearn_comm_server/internal/dto/request"
	"elearn_comm_server/internal/dto/respond"
	"elearn_comm_server/internal/model"
	"elearn_comm_server/internal/service/notification"
	"elearn_comm_server/pkg/enum/notification/notification_type_enum"
	"elearn_comm_server/pkg/errorx"
	"elearn_comm_server/pkg/util/random"
	"elearn_comm_server/pkg/util/snowflake"
)

// forumService 论坛业务逻辑实现
type forumService struct {
	repos  *mysql.Repositories
	notify notification.Dispatcher
}

// NewForumService 构造函数
func NewForumService(repos *mysql.Repositories, notify notification.Dispatcher) *forumService {
	return &forumService{
		repos:  repos,
		notify: notify,
	}
}

// CreateThread 创建讨论帖
func (s *forumService) CreateThread(userId string, req request.CreateThreadRequest) (*respond.ForumThreadRespond, error) {
	thread := model.ForumThread{
		Uuid:      fmt.Sprintf("F%s", random.GetNowAndLenRandomString(11)),
		CourseId:  req.CourseId,
		CreatedBy: userId,
		Title:     req.Title,
		Content:   req.Content,
	}
	if err := s.repos.Forum.CreateThread(&thread); err != nil {
		zap.L().Error("创建讨论帖失败",
			zap.String("user_id", userId),
			zap.String("course_id", req.CourseId),
			zap.Error(err),
		)
		return nil, errorx.ErrServerBusy
	}

	zap.L().Info("讨论帖创建成功",
		zap.String("thread_id", thread.Uuid),
		zap.String("course_id", req.CourseId),
	)

	return &respond.ForumThreadRespond{
		ThreadId:  thread.Uuid,
		CourseId:  thread.CourseId,
		CreatedBy: thread.CreatedBy,
		Title:     thread.Title,
		Content:   thread.Content,
		CreatedAt: thread.CreatedAt.Format("2006-01-02 15:04:05"),
		Replies:   []respond.ForumReplyRespond{},
	}, nil
}

// Reply 回复讨论帖
// 自己回复自己的帖子不发通知
func (s *forumService) Reply(userId string, req request.ReplyThreadRequest) error {
	thread, err := s.repos.Forum.FindThreadByUuid(req.ThreadId)
	if err != nil {
		if errorx.GetCode(err) == errorx.CodeNotFound {
			return errorx.New(errorx.CodeNotFound, "讨论帖不存在")
		}
		zap.L().Error("查询讨论帖失败", zap.String("thread_id", req.ThreadId), zap.Error(err))
		return errorx.ErrServerBusy
	}

	reply := model.ForumReply{
		Uuid:      snowflake.GenerateID(),
		ThreadId:  thread.Uuid,
		UserId:    userId,
		Message:   req.Message,
		RepliedAt: time.Now(),
	}
	if err := s.repos.Forum.CreateReply(&reply); err != nil {
		zap.L().Error("创建回复失败", zap.String("thread_id", req.ThreadId), zap.Error(err))
		return errorx.ErrServerBusy
	}

	if thread.CreatedBy != userId {
		s.notify.Dispatch(thread.CreatedBy, notification_type_enum.REPLY,
			fmt.Sprintf("用户%s回复了你的帖子「%s」", userId, thread.Title))
	}
	return nil
}

// GetThread 获取讨论帖详情（含全部回复，按回复时间升序）
func (s *forumService) GetThread(threadId string) (*respond.ForumThreadRespond, error) {
	thread, err := s.repos.Forum.FindThreadByUuid(threadId)
	if err != nil {
		if errorx.GetCode(err) == errorx.CodeNotFound {
			return nil, errorx.New(errorx.CodeNotFound, "讨论帖不存在")
		}
		zap.L().Error("查询讨论帖失败", zap.String("thread_id", threadId), zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	replies, err := s.repos.Forum.FindRepliesByThread(threadId)
	if err != nil {
		zap.L().Error("查询帖子回复失败", zap.String("thread_id", threadId), zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	replyList := make([]respond.ForumReplyRespond, 0, len(replies))
	for _, r := range replies {
		replyList = append(replyList, respond.ForumReplyRespond{
			UserId:    r.UserId,
			Message:   r.Message,
			RepliedAt: r.RepliedAt.Format("2006-01-02 15:04:05"),
		})
	}

	return &respond.ForumThreadRespond{
		ThreadId:  thread.Uuid,
		CourseId:  thread.CourseId,
		CreatedBy: thread.CreatedBy,
		Title:     thread.Title,
		Content:   thread.Content,
		CreatedAt: thread.CreatedAt.Format("2006-01-02 15:04:05"),
		Replies:   replyList,
	}, nil
}

// ListByCourse 获取课程下的讨论帖列表，最新的在前
func (s *forumService) ListByCourse(courseId string) ([]respond.ThreadListRespond, error) {
	threads, err := s.repos.Forum.FindThreadsByCourse(courseId)
	if err != nil {
		zap.L().Error("查询课程讨论帖失败", zap.String("course_id", courseId), zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	list := make([]respond.ThreadListRespond, 0, len(threads))
	for _, t := range threads {
		list = append(list, respond.ThreadListRespond{
			ThreadId:  t.Uuid,
			Title:     t.Title,
			CreatedBy: t.CreatedBy,
			CreatedAt: t.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
	return list, nil
}
