// Package router 提供 HTTP 路由注册
// 本文件定义通知相关的路由
package router

import (
	"github.com/gin-gonic/gin"
)

// RegisterNotificationRoutes 注册通知相关路由（需要认证）
func (rt *Router) RegisterNotificationRoutes(rg *gin.RouterGroup) {
	notifyGroup := rg.Group("/notification")
	{
		notifyGroup.GET("/unreadList", rt.handlers.Notification.GetUnreadList) // 未读通知列表
		notifyGroup.GET("/list", rt.handlers.Notification.GetAllList)          // 全部通知列表
		notifyGroup.PATCH("/markRead", rt.handlers.Notification.MarkRead)      // 标记已读
		notifyGroup.POST("/announce", rt.handlers.Notification.Announce)       // 广播公告
	}
}
