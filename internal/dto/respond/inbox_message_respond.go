package respond

// InboxMessageRespond 收件箱消息列表项
type InboxMessageRespond struct {
	MessageId string `json:"message_id"`
	ChatId    string `json:"chat_id"`
	SenderId  string `json:"sender_id"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}
