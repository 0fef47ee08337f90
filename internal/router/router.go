// Package router 提供 HTTP 路由注册
// 本文件是路由注册的入口，聚合所有子模块的路由
package router

import (
	"elearn_comm_server/internal/handler"
	"elearn_comm_server/internal/infrastructure/middleware"

	"github.com/gin-gonic/gin"
)

// Router 路由注册器
// 持有 Handlers 聚合，各模块路由通过它访问对应的 Handler
type Router struct {
	handlers *handler.Handlers
}

// NewRouter 创建路由注册器实例
func NewRouter(handlers *handler.Handlers) *Router {
	return &Router{handlers: handlers}
}

// RegisterRoutes 注册所有路由
// 在 https_server.Init() 中调用
// 除会话创建/校验和 WebSocket 入口外，其余路由均需要 JWT 认证
func (rt *Router) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api")

	// 开放路由：登录前可访问
	rt.RegisterSessionOpenRoutes(api)
	rt.RegisterWebSocketRoutes(api)

	// 认证路由
	authed := api.Group("")
	authed.Use(middleware.JWTAuth())
	rt.RegisterSessionRoutes(authed)
	rt.RegisterInviteRoutes(authed)
	rt.RegisterChatRoutes(authed)
	rt.RegisterNotificationRoutes(authed)
	rt.RegisterSavedRoutes(authed)
	rt.RegisterForumRoutes(authed)
}
