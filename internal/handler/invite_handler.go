// Package handler 提供 HTTP 请求处理器
// 本文件处理聊天邀请相关的 API 请求
package handler

import (
	"elearn_comm_server/internal/dto/request"
	"elearn_comm_server/internal/service"

	"github.com/gin-gonic/gin"
)

// InviteHandler 邀请请求处理器
type InviteHandler struct {
	inviteSvc service.InviteService
}

// NewInviteHandler 创建邀请处理器实例
func NewInviteHandler(inviteSvc service.InviteService) *InviteHandler {
	return &InviteHandler{inviteSvc: inviteSvc}
}

// CreateInvite 发起邀请
// POST /invite/create
// 请求体: request.CreateInviteRequest
// 响应: respond.InviteRespond
func (h *InviteHandler) CreateInvite(c *gin.Context) {
	var req request.CreateInviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.inviteSvc.CreateInvite(currentUserId(c), req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// RespondInvite 应答邀请（接受或拒绝）
// PATCH /invite/respond
// 请求体: request.RespondInviteRequest
// 响应: respond.RespondInviteRespond
func (h *InviteHandler) RespondInvite(c *gin.Context) {
	var req request.RespondInviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.inviteSvc.RespondInvite(currentUserId(c), req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// GetPendingInvites 获取我的待处理邀请列表
// GET /invite/pendingList
// 响应: []respond.InviteRespond
func (h *InviteHandler) GetPendingInvites(c *gin.Context) {
	data, err := h.inviteSvc.GetPendingInvites(currentUserId(c))
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}
