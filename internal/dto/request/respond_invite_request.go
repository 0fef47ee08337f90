package request

// RespondInviteRequest 应答聊天邀请请求
type RespondInviteRequest struct {
	InviteId string `json:"invite_id" form:"invite_id" binding:"required"`
	Action   string `json:"action" form:"action" binding:"required,oneof=accept reject"`
}
