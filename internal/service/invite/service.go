// Package invite 实现聊天邀请状态机
// pending -> accepted / pending -> rejected，终态不可变
// 并发双应答通过条件更新（仅当仍为 pending 时落库）裁决，落败方收到已处理错误
package invite

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"elearn_comm_server/internal/dao/mysql"
	"elearn_comm_server/internal/dto/request"
	"elearn_comm_server/internal/dto/respond"
	"elearn_comm_server/internal/infrastructure/userapi"
	"elearn_comm_server/internal/model"
	"elearn_comm_server/internal/service/notification"
	"elearn_comm_server/pkg/enum/invite/invite_status_enum"
	"elearn_comm_server/pkg/enum/notification/notification_type_enum"
	"elearn_comm_server/pkg/errorx"
	"elearn_comm_server/pkg/util/random"
)

// inviteService 邀请业务逻辑实现
type inviteService struct {
	repos  *mysql.Repositories
	users  userapi.UserResolver
	notify notification.Dispatcher
}

// NewInviteService 构造函数，注入所有依赖
func NewInviteService(repos *mysql.Repositories, users userapi.UserResolver, notify notification.Dispatcher) *inviteService {
	return &inviteService{
		repos:  repos,
		users:  users,
		notify: notify,
	}
}

// CreateInvite 发起邀请
func (s *inviteService) CreateInvite(fromId string, req request.CreateInviteRequest) (*respond.InviteRespond, error) {
	if req.ToId == fromId {
		return nil, errorx.New(errorx.CodeInvalidParam, "不能向自己发起邀请")
	}

	missing, err := s.users.Missing(context.Background(), []string{fromId, req.ToId})
	if err != nil {
		zap.L().Error("校验邀请双方失败",
			zap.String("from_id", fromId),
			zap.String("to_id", req.ToId),
			zap.Error(err),
		)
		return nil, errorx.ErrServerBusy
	}
	if len(missing) > 0 {
		return nil, errorx.Newf(errorx.CodeInvalidParam, "用户不存在: %s", strings.Join(missing, ","))
	}

	invite := model.Invite{
		Uuid:   fmt.Sprintf("I%s", random.GetNowAndLenRandomString(11)),
		FromId: fromId,
		ToId:   req.ToId,
		Status: invite_status_enum.PENDING,
	}
	if err := s.repos.Invite.Create(&invite); err != nil {
		zap.L().Error("创建邀请失败",
			zap.String("from_id", fromId),
			zap.String("to_id", req.ToId),
			zap.Error(err),
		)
		return nil, errorx.ErrServerBusy
	}

	s.notify.Dispatch(req.ToId, notification_type_enum.MESSAGE,
		fmt.Sprintf("用户%s向你发起了聊天邀请", fromId))

	zap.L().Info("邀请创建成功",
		zap.String("from_id", fromId),
		zap.String("to_id", req.ToId),
		zap.String("invite_id", invite.Uuid),
	)

	return buildInviteRespond(&invite), nil
}

// RespondInvite 应答邀请
// 接受无房间的邀请时先确保房间存在，再以条件更新一次性落下终态和房间 id
func (s *inviteService) RespondInvite(userId string, req request.RespondInviteRequest) (*respond.RespondInviteRespond, error) {
	invite, err := s.repos.Invite.FindByUuid(req.InviteId)
	if err != nil {
		if errorx.GetCode(err) == errorx.CodeNotFound {
			return nil, errorx.New(errorx.CodeNotFound, "邀请不存在")
		}
		zap.L().Error("查询邀请失败", zap.String("invite_id", req.InviteId), zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	if invite.ToId != userId {
		return nil, errorx.New(errorx.CodeForbidden, "只有接收人可以处理邀请")
	}
	if invite.Status != invite_status_enum.PENDING {
		return nil, errorx.New(errorx.CodeInvalidState, "邀请已被处理")
	}

	status := invite_status_enum.REJECTED
	if req.Action == "accept" {
		status = invite_status_enum.ACCEPTED
	}

	chatRoomId := invite.ChatRoomId
	if status == invite_status_enum.ACCEPTED && chatRoomId == "" {
		chatRoomId, err = s.ensureChat([]string{invite.FromId, invite.ToId})
		if err != nil {
			return nil, err
		}
	}

	resolved, err := s.repos.Invite.ResolveIfPending(invite.Uuid, status, chatRoomId)
	if err != nil {
		zap.L().Error("更新邀请状态失败", zap.String("invite_id", invite.Uuid), zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	if !resolved {
		// 并发应答落败，终态以先到者为准
		return nil, errorx.New(errorx.CodeInvalidState, "邀请已被处理")
	}

	decision := "拒绝"
	if status == invite_status_enum.ACCEPTED {
		decision = "接受"
	}
	s.notify.Dispatch(invite.FromId, notification_type_enum.MESSAGE,
		fmt.Sprintf("用户%s%s了你的聊天邀请", userId, decision))

	zap.L().Info("邀请已应答",
		zap.String("invite_id", invite.Uuid),
		zap.String("action", req.Action),
		zap.String("chat_room_id", chatRoomId),
	)

	rsp := &respond.RespondInviteRespond{
		InviteId: invite.Uuid,
		Status:   invite_status_enum.Label(status),
	}
	if status == invite_status_enum.ACCEPTED {
		rsp.ChatRoomId = chatRoomId
	}
	return rsp, nil
}

// GetPendingInvites 获取我的待处理邀请
func (s *inviteService) GetPendingInvites(userId string) ([]respond.InviteRespond, error) {
	invites, err := s.repos.Invite.FindPendingByToId(userId)
	if err != nil {
		zap.L().Error("查询待处理邀请失败", zap.String("user_id", userId), zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	list := make([]respond.InviteRespond, 0, len(invites))
	for i := range invites {
		list = append(list, *buildInviteRespond(&invites[i]))
	}
	return list, nil
}

// ensureChat 确保成员集对应的房间存在，返回既有房间或新建房间的 id
// 邀请建房不受 dedupRooms 策略影响，相同成员集始终复用
func (s *inviteService) ensureChat(participants []string) (string, error) {
	jsonStr, key := model.EncodeParticipants(participants)

	existing, err := s.repos.Chat.FindByParticipantsKey(key)
	if err == nil {
		return existing.Uuid, nil
	}
	if errorx.GetCode(err) != errorx.CodeNotFound {
		zap.L().Error("查询既有房间失败", zap.Error(err))
		return "", errorx.ErrServerBusy
	}

	chat := model.Chat{
		Uuid:            fmt.Sprintf("C%s", random.GetNowAndLenRandomString(11)),
		Participants:    jsonStr,
		ParticipantsKey: key,
	}
	if err := s.repos.Chat.Create(&chat); err != nil {
		zap.L().Error("创建房间失败", zap.Error(err))
		return "", errorx.ErrServerBusy
	}
	return chat.Uuid, nil
}

func buildInviteRespond(invite *model.Invite) *respond.InviteRespond {
	return &respond.InviteRespond{
		InviteId:   invite.Uuid,
		FromId:     invite.FromId,
		ToId:       invite.ToId,
		Status:     invite_status_enum.Label(invite.Status),
		ChatRoomId: invite.ChatRoomId,
		CreatedAt:  invite.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
