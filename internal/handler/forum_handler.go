// Package handler 提供 HTTP 请求处理器
// 本文件处理课程论坛相关的 API 请求
package handler

import (
	"elearn_comm_server/internal/dto/request"
	"elearn_comm_server/internal/service"

	"github.com/gin-gonic/gin"
)

// ForumHandler 论坛请求处理器
type ForumHandler struct {
	forumSvc service.ForumService
}

// NewForumHandler 创建论坛处理器实例
func NewForumHandler(forumSvc service.ForumService) *ForumHandler {
	return &ForumHandler{forumSvc: forumSvc}
}

// CreateThread 创建讨论帖
// POST /forum/createThread
// 请求体: request.CreateThreadRequest
// 响应: respond.ForumThreadRespond
func (h *ForumHandler) CreateThread(c *gin.Context) {
	var req request.CreateThreadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.forumSvc.CreateThread(currentUserId(c), req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// Reply 回复讨论帖
// POST /forum/reply
// 请求体: request.ReplyThreadRequest
func (h *ForumHandler) Reply(c *gin.Context) {
	var req request.ReplyThreadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.forumSvc.Reply(currentUserId(c), req); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// GetThread 获取讨论帖详情
// GET /forum/thread?thread_id=xxx
// 查询参数: request.ThreadDetailRequest
// 响应: respond.ForumThreadRespond
func (h *ForumHandler) GetThread(c *gin.Context) {
	var req request.ThreadDetailRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.forumSvc.GetThread(req.ThreadId)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// ListByCourse 获取课程下的讨论帖列表
// GET /forum/listByCourse?course_id=xxx
// 查询参数: request.CourseThreadsRequest
// 响应: []respond.ThreadListRespond
func (h *ForumHandler) ListByCourse(c *gin.Context) {
	var req request.CourseThreadsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.forumSvc.ListByCourse(req.CourseId)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}
