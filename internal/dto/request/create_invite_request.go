package request

// CreateInviteRequest 发起聊天邀请请求
// 发起者从登录态取得，不从请求体传入
type CreateInviteRequest struct {
	ToId string `json:"to_id" form:"to_id" binding:"required"`
}
