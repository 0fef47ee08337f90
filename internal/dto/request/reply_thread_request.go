package request

// ReplyThreadRequest 回复讨论帖请求
type ReplyThreadRequest struct {
	ThreadId string `json:"thread_id" form:"thread_id" binding:"required"`
	Message  string `json:"message" form:"message" binding:"required"`
}
