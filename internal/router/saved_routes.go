// Package router 提供 HTTP 路由注册
// 本文件定义会话收藏相关的路由
package router

import (
	"github.com/gin-gonic/gin"
)

// RegisterSavedRoutes 注册收藏相关路由（需要认证）
func (rt *Router) RegisterSavedRoutes(rg *gin.RouterGroup) {
	savedGroup := rg.Group("/saved")
	{
		savedGroup.POST("/save", rt.handlers.Saved.Save)     // 收藏
		savedGroup.POST("/update", rt.handlers.Saved.Update) // 更新收藏
		savedGroup.POST("/delete", rt.handlers.Saved.Delete) // 删除收藏
		savedGroup.GET("/list", rt.handlers.Saved.GetList)   // 我的收藏列表
	}
}
