package respond

// CreateSessionRespond 创建认证会话响应
// 使用位置:
//   - internal/service/session: CreateSession
type CreateSessionRespond struct {
	SessionId    string `json:"session_id"`
	UserId       string `json:"user_id"`
	ExpiresAt    string `json:"expires_at"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}
