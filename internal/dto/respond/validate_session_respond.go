package respond

// ValidateSessionRespond 会话校验响应
type ValidateSessionRespond struct {
	UserId    string `json:"user_id"`
	ExpiresAt string `json:"expires_at"`
}
