// Package handler 提供 HTTP 请求处理器
// 本文件处理通知相关的 API 请求
package handler

import (
	"elearn_comm_server/internal/dto/request"
	"elearn_comm_server/internal/service"

	"github.com/gin-gonic/gin"
)

// NotificationHandler 通知请求处理器
type NotificationHandler struct {
	notifySvc service.NotificationService
}

// NewNotificationHandler 创建通知处理器实例
func NewNotificationHandler(notifySvc service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notifySvc: notifySvc}
}

// GetUnreadList 获取未读通知列表
// GET /notification/unreadList
// 响应: []respond.NotificationRespond
func (h *NotificationHandler) GetUnreadList(c *gin.Context) {
	data, err := h.notifySvc.GetUnreadList(currentUserId(c))
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// GetAllList 获取全部通知列表
// GET /notification/list
// 响应: []respond.NotificationRespond
func (h *NotificationHandler) GetAllList(c *gin.Context) {
	data, err := h.notifySvc.GetAllList(currentUserId(c))
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// MarkRead 标记通知已读
// PATCH /notification/markRead
// 请求体: request.MarkReadRequest
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	var req request.MarkReadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.notifySvc.MarkRead(currentUserId(c), req); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// Announce 向指定用户列表广播公告
// POST /notification/announce
// 请求体: request.AnnounceRequest
func (h *NotificationHandler) Announce(c *gin.Context) {
	var req request.AnnounceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.notifySvc.Announce(req); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}
