package request

// RevokeSessionRequest 注销会话请求
type RevokeSessionRequest struct {
	SessionId string `json:"session_id" form:"session_id" binding:"required"`
}
