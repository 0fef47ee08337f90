package request

// CreateChatRequest 创建聊天室请求
// 使用位置:
//   - internal/handler/chat: CreateChatHandler
//   - internal/service/chat: CreateChat
type CreateChatRequest struct {
	Participants []string `json:"participants" form:"participants" binding:"required,dive,required"`
}
