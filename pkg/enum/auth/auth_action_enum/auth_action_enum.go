// Package auth_action_enum 定义认证审计日志的动作类型
package auth_action_enum

const (
	LOGIN          = "LOGIN"          // 登录（创建会话）
	LOGOUT         = "LOGOUT"         // 登出（撤销会话）
	PASSWORD_RESET = "PASSWORD_RESET" // 密码重置（由外部协作方触发）
)
