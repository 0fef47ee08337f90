package request

// ThreadDetailRequest 获取讨论帖详情请求
type ThreadDetailRequest struct {
	ThreadId string `json:"thread_id" form:"thread_id" binding:"required"`
}
