package respond

// SendMessageRespond 发送房间消息响应
type SendMessageRespond struct {
	MessageId string `json:"message_id"`
	ChatId    string `json:"chat_id"`
	Seq       int64  `json:"seq"`
	SentAt    string `json:"sent_at"`
}
