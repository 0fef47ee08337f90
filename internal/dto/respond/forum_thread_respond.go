package respond

// ForumReplyRespond 讨论帖回复项
type ForumReplyRespond struct {
	UserId    string `json:"user_id"`
	Message   string `json:"message"`
	RepliedAt string `json:"replied_at"`
}

// ForumThreadRespond 讨论帖详情
type ForumThreadRespond struct {
	ThreadId  string              `json:"thread_id"`
	CourseId  string              `json:"course_id"`
	CreatedBy string              `json:"created_by"`
	Title     string              `json:"title"`
	Content   string              `json:"content"`
	CreatedAt string              `json:"created_at"`
	Replies   []ForumReplyRespond `json:"replies"`
}
