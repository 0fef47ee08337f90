// Package handler 提供 HTTP 请求处理器
// 本文件处理聊天室相关的 API 请求
package handler

import (
	"elearn_comm_server/internal/dto/request"
	"elearn_comm_server/internal/service"

	"github.com/gin-gonic/gin"
)

// ChatHandler 聊天室请求处理器
type ChatHandler struct {
	chatSvc service.ChatService
}

// NewChatHandler 创建聊天室处理器实例
func NewChatHandler(chatSvc service.ChatService) *ChatHandler {
	return &ChatHandler{chatSvc: chatSvc}
}

// CreateChat 创建聊天室
// POST /chat/create
// 请求体: request.CreateChatRequest
// 响应: respond.CreateChatRespond
func (h *ChatHandler) CreateChat(c *gin.Context) {
	var req request.CreateChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.chatSvc.CreateChat(currentUserId(c), req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// SendMessage 向房间发送消息
// POST /chat/sendMessage
// 请求体: request.SendMessageRequest
// 响应: respond.SendMessageRespond
func (h *ChatHandler) SendMessage(c *gin.Context) {
	var req request.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.chatSvc.SendMessage(currentUserId(c), req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// GetMessageList 分页拉取房间消息
// GET /chat/messageList?chat_id=xxx&after_seq=0&limit=50
// 查询参数: request.MessageListRequest
// 响应: respond.MessageListWrapper
func (h *ChatHandler) GetMessageList(c *gin.Context) {
	var req request.MessageListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.chatSvc.GetMessageList(currentUserId(c), req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// GetUserChats 获取我参与的聊天室列表
// GET /chat/myChats
// 响应: []respond.MyChatRespond
func (h *ChatHandler) GetUserChats(c *gin.Context) {
	data, err := h.chatSvc.GetUserChats(currentUserId(c))
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// GetInbox 获取发给我的消息
// GET /chat/inbox
// 响应: []respond.InboxMessageRespond
func (h *ChatHandler) GetInbox(c *gin.Context) {
	data, err := h.chatSvc.GetInbox(currentUserId(c))
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}
