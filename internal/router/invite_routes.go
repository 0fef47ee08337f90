// Package router 提供 HTTP 路由注册
// 本文件定义聊天邀请相关的路由
package router

import (
	"github.com/gin-gonic/gin"
)

// RegisterInviteRoutes 注册邀请相关路由（需要认证）
func (rt *Router) RegisterInviteRoutes(rg *gin.RouterGroup) {
	inviteGroup := rg.Group("/invite")
	{
		inviteGroup.POST("/create", rt.handlers.Invite.CreateInvite)          // 发起邀请
		inviteGroup.PATCH("/respond", rt.handlers.Invite.RespondInvite)       // 应答邀请
		inviteGroup.GET("/pendingList", rt.handlers.Invite.GetPendingInvites) // 待处理邀请列表
	}
}
