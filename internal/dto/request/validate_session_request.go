package request

// ValidateSessionRequest 校验会话请求
type ValidateSessionRequest struct {
	SessionId string `json:"session_id" form:"session_id" binding:"required"`
}
