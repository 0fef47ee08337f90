package respond

// InviteRespond 邀请信息
// 使用位置:
//   - internal/service/invite: CreateInvite, GetPendingInvites
type InviteRespond struct {
	InviteId   string `json:"invite_id"`
	FromId     string `json:"from_id"`
	ToId       string `json:"to_id"`
	Status     string `json:"status"`
	ChatRoomId string `json:"chat_room_id,omitempty"`
	CreatedAt  string `json:"created_at"`
}
