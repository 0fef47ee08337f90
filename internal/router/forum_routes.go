// Package router 提供 HTTP 路由注册
// 本文件定义课程论坛相关的路由
package router

import (
	"github.com/gin-gonic/gin"
)

// RegisterForumRoutes 注册论坛相关路由（需要认证）
func (rt *Router) RegisterForumRoutes(rg *gin.RouterGroup) {
	forumGroup := rg.Group("/forum")
	{
		forumGroup.POST("/createThread", rt.handlers.Forum.CreateThread) // 创建讨论帖
		forumGroup.POST("/reply", rt.handlers.Forum.Reply)               // 回复讨论帖
		forumGroup.GET("/thread", rt.handlers.Forum.GetThread)           // 讨论帖详情
		forumGroup.GET("/listByCourse", rt.handlers.Forum.ListByCourse)  // 课程讨论帖列表
	}
}
