// Package handler 提供 HTTP 请求处理器
// 本文件处理 WebSocket 连接升级请求
package handler

import (
	"elearn_comm_server/internal/dto/request"
	"elearn_comm_server/internal/gateway/websocket"
	"elearn_comm_server/internal/service"

	"github.com/gin-gonic/gin"
)

// WsHandler WebSocket 连接处理器
// 连接建立前通过会话校验确认身份
type WsHandler struct {
	sessionSvc service.SessionService
}

// NewWsHandler 创建 WebSocket 处理器实例
func NewWsHandler(sessionSvc service.SessionService) *WsHandler {
	return &WsHandler{sessionSvc: sessionSvc}
}

// Connect 建立 WebSocket 长连接
// GET /ws?session_id=xxx
// 会话无效或过期时拒绝升级
func (h *WsHandler) Connect(c *gin.Context) {
	var req request.ValidateSessionRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.sessionSvc.ValidateSession(req.SessionId)
	if err != nil {
		HandleError(c, err)
		return
	}
	websocket.NewClientInit(c, data.UserId)
}
