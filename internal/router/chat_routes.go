// Package router 提供 HTTP 路由注册
// 本文件定义聊天室相关的路由
package router

import (
	"github.com/gin-gonic/gin"
)

// RegisterChatRoutes 注册聊天室相关路由（需要认证）
func (rt *Router) RegisterChatRoutes(rg *gin.RouterGroup) {
	chatGroup := rg.Group("/chat")
	{
		chatGroup.POST("/create", rt.handlers.Chat.CreateChat)         // 创建聊天室
		chatGroup.POST("/sendMessage", rt.handlers.Chat.SendMessage)   // 发送消息
		chatGroup.GET("/messageList", rt.handlers.Chat.GetMessageList) // 分页拉取消息
		chatGroup.GET("/myChats", rt.handlers.Chat.GetUserChats)       // 我参与的聊天室
		chatGroup.GET("/inbox", rt.handlers.Chat.GetInbox)             // 收件箱
	}
}
