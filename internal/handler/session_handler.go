// Package handler 提供 HTTP 请求处理器
// 本文件处理认证会话相关的 API 请求
package handler

import (
	"elearn_comm_server/internal/dto/request"
	"elearn_comm_server/internal/gateway/websocket"
	"elearn_comm_server/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SessionHandler 会话请求处理器
// 通过构造函数注入 SessionService，遵循依赖倒置原则
type SessionHandler struct {
	sessionSvc service.SessionService
}

// NewSessionHandler 创建会话处理器实例
func NewSessionHandler(sessionSvc service.SessionService) *SessionHandler {
	return &SessionHandler{sessionSvc: sessionSvc}
}

// CreateSession 创建会话
// POST /session/create
// 请求体: request.CreateSessionRequest
// 响应: respond.CreateSessionRespond
func (h *SessionHandler) CreateSession(c *gin.Context) {
	var req request.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.sessionSvc.CreateSession(req, c.ClientIP(), c.GetHeader("User-Agent"))
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// ValidateSession 校验会话
// GET /session/validate?session_id=xxx
// 查询参数: request.ValidateSessionRequest
// 响应: respond.ValidateSessionRespond
func (h *SessionHandler) ValidateSession(c *gin.Context) {
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
	HandleSuccess(c, data)
}

// RevokeSession 注销会话
// POST /session/revoke
// 请求体: request.RevokeSessionRequest
func (h *SessionHandler) RevokeSession(c *gin.Context) {
	var req request.RevokeSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.sessionSvc.RevokeSession(req.SessionId); err != nil {
		HandleError(c, err)
		return
	}
	// 注销后关闭该用户的在线推送连接
	if userId := currentUserId(c); userId != "" {
		if err := websocket.ClientLogout(userId); err != nil {
			zap.L().Warn("关闭ws连接失败", zap.String("userId", userId), zap.Error(err))
		}
	}
	HandleSuccess(c, nil)
}
