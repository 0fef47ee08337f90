package request

// CreateSessionRequest 创建认证会话请求
// TTLMinutes 为指针：不传时采用配置默认值，显式传 0 创建立即过期的会话
// 使用位置:
//   - internal/handler/session: CreateSessionHandler
//   - internal/service/session: CreateSession
type CreateSessionRequest struct {
	UserId     string `json:"user_id" form:"user_id" binding:"required"`
	TTLMinutes *int   `json:"ttl_minutes" form:"ttl_minutes" binding:"omitempty,gte=0"`
}
