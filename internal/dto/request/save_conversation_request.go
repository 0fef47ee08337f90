package request

// SaveConversationRequest 收藏会话请求
// ChatId 与 ThreadId 恰好传一个，另一个留空
type SaveConversationRequest struct {
	ChatId   string `json:"chat_id" form:"chat_id"`
	ThreadId string `json:"thread_id" form:"thread_id"`
}
