package request

// SendMessageRequest 发送房间消息请求
type SendMessageRequest struct {
	ChatId  string `json:"chat_id" form:"chat_id" binding:"required"`
	Content string `json:"content" form:"content"`
}
