package respond

// ThreadListRespond 课程讨论帖列表项
type ThreadListRespond struct {
	ThreadId  string `json:"thread_id"`
	Title     string `json:"title"`
	CreatedBy string `json:"created_by"`
	CreatedAt string `json:"created_at"`
}
