package respond

// RespondInviteRespond 邀请应答结果
type RespondInviteRespond struct {
	InviteId   string `json:"invite_id"`
	Status     string `json:"status"`
	ChatRoomId string `json:"chat_room_id,omitempty"`
}
