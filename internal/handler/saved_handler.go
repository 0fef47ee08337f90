// Package handler 提供 HTTP 请求处理器
// 本文件处理会话收藏相关的 API 请求
package handler

import (
	"elearn_comm_server/internal/dto/request"
	"elearn_comm_server/internal/service"

	"github.com/gin-gonic/gin"
)

// SavedHandler 收藏请求处理器
type SavedHandler struct {
	savedSvc service.SavedService
}

// NewSavedHandler 创建收藏处理器实例
func NewSavedHandler(savedSvc service.SavedService) *SavedHandler {
	return &SavedHandler{savedSvc: savedSvc}
}

// Save 收藏一个聊天室或讨论帖
// POST /saved/save
// 请求体: request.SaveConversationRequest
// 响应: respond.SavedConversationRespond
func (h *SavedHandler) Save(c *gin.Context) {
	var req request.SaveConversationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.savedSvc.Save(currentUserId(c), req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// Update 更新收藏指向
// POST /saved/update
// 请求体: request.UpdateSavedRequest
// 响应: respond.SavedConversationRespond
func (h *SavedHandler) Update(c *gin.Context) {
	var req request.UpdateSavedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.savedSvc.Update(currentUserId(c), req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// Delete 删除收藏
// POST /saved/delete
// 请求体: request.DeleteSavedRequest
func (h *SavedHandler) Delete(c *gin.Context) {
	var req request.DeleteSavedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.savedSvc.Delete(currentUserId(c), req); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// GetList 获取我的收藏列表
// GET /saved/list
// 响应: []respond.SavedConversationRespond
func (h *SavedHandler) GetList(c *gin.Context) {
	data, err := h.savedSvc.GetList(currentUserId(c))
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}
