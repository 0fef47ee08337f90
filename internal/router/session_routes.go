// Package router 提供 HTTP 路由注册
// 本文件定义认证会话相关的路由
package router

import (
	"github.com/gin-gonic/gin"
)

// RegisterSessionOpenRoutes 注册无需认证的会话路由
// 创建与校验发生在持有 JWT 之前
func (rt *Router) RegisterSessionOpenRoutes(rg *gin.RouterGroup) {
	sessionGroup := rg.Group("/session")
	{
		sessionGroup.POST("/create", rt.handlers.Session.CreateSession)    // 创建会话并签发令牌
		sessionGroup.GET("/validate", rt.handlers.Session.ValidateSession) // 校验会话
	}
}

// RegisterSessionRoutes 注册需要认证的会话路由
func (rt *Router) RegisterSessionRoutes(rg *gin.RouterGroup) {
	sessionGroup := rg.Group("/session")
	{
		sessionGroup.POST("/revoke", rt.handlers.Session.RevokeSession) // 注销会话
	}
}
