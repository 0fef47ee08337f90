package respond

// CreateChatRespond 创建聊天室响应
type CreateChatRespond struct {
	ChatId       string   `json:"chat_id"`
	Participants []string `json:"participants"`
	CreatedAt    string   `json:"created_at"`
}
