// Package saved 实现会话收藏业务逻辑
// 收藏目标为带标签的联合：chat 或 forum_thread，二者必居其一
package saved

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"elearn_comm_server/internal/dao/mysql"
	"elearn_comm_server/internal/dto/request"
	"elearn_comm_server/internal/dto/respond"
	"elearn_comm_server/internal/model"
	"elearn_comm_server/pkg/enum/saved/saved_target_enum"
	"elearn_comm_server/pkg/errorx"
	"elearn_comm_server/pkg/util/random"
)

// savedService 收藏业务逻辑实现
type savedService struct {
	repos *mysql.Repositories
}

// NewSavedService 构造函数
func NewSavedService(repos *mysql.Repositories) *savedService {
	return &savedService{repos: repos}
}

// resolveTarget 将请求的 chatId/threadId 归一化为目标类型和目标 id
// 双设或双空返回参数错误
func resolveTarget(chatId, threadId string) (targetType, targetId string, err error) {
	switch {
	case chatId != "" && threadId != "":
		return "", "", errorx.New(errorx.CodeInvalidParam, "只能指定一个收藏目标")
	case chatId == "" && threadId == "":
		return "", "", errorx.New(errorx.CodeInvalidParam, "必须指定一个收藏目标")
	case chatId != "":
		return saved_target_enum.CHAT, chatId, nil
	default:
		return saved_target_enum.FORUM_THREAD, threadId, nil
	}
}

// checkTargetExists 校验收藏目标实体存在
func (s *savedService) checkTargetExists(targetType, targetId string) error {
	var err error
	if targetType == saved_target_enum.CHAT {
		_, err = s.repos.Chat.FindByUuid(targetId)
	} else {
		_, err = s.repos.Forum.FindThreadByUuid(targetId)
	}
	if err != nil {
		if errorx.GetCode(err) == errorx.CodeNotFound {
			return errorx.New(errorx.CodeNotFound, "收藏目标不存在")
		}
		zap.L().Error("查询收藏目标失败",
			zap.String("target_type", targetType),
			zap.String("target_id", targetId),
			zap.Error(err),
		)
		return errorx.ErrServerBusy
	}
	return nil
}

// Save 收藏一个聊天室或讨论帖
// 同一目标允许重复收藏，每次收藏是独立条目（与房间去重策略不同）
func (s *savedService) Save(userId string, req request.SaveConversationRequest) (*respond.SavedConversationRespond, error) {
	targetType, targetId, err := resolveTarget(req.ChatId, req.ThreadId)
	if err != nil {
		return nil, err
	}
	if err := s.checkTargetExists(targetType, targetId); err != nil {
		return nil, err
	}

	saved := model.SavedConversation{
		Uuid:       fmt.Sprintf("V%s", random.GetNowAndLenRandomString(11)),
		UserId:     userId,
		TargetType: targetType,
		TargetId:   targetId,
		SavedAt:    time.Now(),
	}
	if err := s.repos.Saved.Create(&saved); err != nil {
		zap.L().Error("创建收藏失败", zap.String("user_id", userId), zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	return buildSavedRespond(&saved), nil
}

// Update 更新收藏
// 指定了新目标则校验并改指向；未指定目标时只刷新收藏时间
func (s *savedService) Update(userId string, req request.UpdateSavedRequest) (*respond.SavedConversationRespond, error) {
	saved, err := s.findOwned(userId, req.SavedId)
	if err != nil {
		return nil, err
	}

	if req.ChatId != "" || req.ThreadId != "" {
		targetType, targetId, err := resolveTarget(req.ChatId, req.ThreadId)
		if err != nil {
			return nil, err
		}
		if err := s.checkTargetExists(targetType, targetId); err != nil {
			return nil, err
		}
		saved.TargetType = targetType
		saved.TargetId = targetId
	}
	saved.SavedAt = time.Now()

	if err := s.repos.Saved.Update(saved); err != nil {
		zap.L().Error("更新收藏失败", zap.String("saved_id", req.SavedId), zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	return buildSavedRespond(saved), nil
}

// Delete 删除收藏
func (s *savedService) Delete(userId string, req request.DeleteSavedRequest) error {
	if _, err := s.findOwned(userId, req.SavedId); err != nil {
		return err
	}
	if err := s.repos.Saved.DeleteByUuid(req.SavedId); err != nil {
		zap.L().Error("删除收藏失败", zap.String("saved_id", req.SavedId), zap.Error(err))
		return errorx.ErrServerBusy
	}
	return nil
}

// GetList 获取我的收藏，按收藏时间倒序
func (s *savedService) GetList(userId string) ([]respond.SavedConversationRespond, error) {
	savedList, err := s.repos.Saved.FindByUserId(userId)
	if err != nil {
		zap.L().Error("查询收藏列表失败", zap.String("user_id", userId), zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	list := make([]respond.SavedConversationRespond, 0, len(savedList))
	for i := range savedList {
		list = append(list, *buildSavedRespond(&savedList[i]))
	}
	return list, nil
}

// findOwned 查找收藏并校验归属
func (s *savedService) findOwned(userId, savedId string) (*model.SavedConversation, error) {
	saved, err := s.repos.Saved.FindByUuid(savedId)
	if err != nil {
		if errorx.GetCode(err) == errorx.CodeNotFound {
			return nil, errorx.New(errorx.CodeNotFound, "收藏不存在")
		}
		zap.L().Error("查询收藏失败", zap.String("saved_id", savedId), zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	if saved.UserId != userId {
		return nil, errorx.New(errorx.CodeForbidden, "只能操作自己的收藏")
	}
	return saved, nil
}

func buildSavedRespond(saved *model.SavedConversation) *respond.SavedConversationRespond {
	return &respond.SavedConversationRespond{
		SavedId:    saved.Uuid,
		TargetType: saved.TargetType,
		TargetId:   saved.TargetId,
		SavedAt:    saved.SavedAt.Format("2006-01-02 15:04:05"),
	}
}
