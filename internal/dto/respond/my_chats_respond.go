package respond

// MyChatRespond 我参与的聊天室列表项
type MyChatRespond struct {
	ChatId        string   `json:"chat_id"`
	Participants  []string `json:"participants"`
	LastMessageAt string   `json:"last_message_at,omitempty"`
}
