package request

// CreateThreadRequest 创建课程讨论帖请求
type CreateThreadRequest struct {
	CourseId string `json:"course_id" form:"course_id" binding:"required"`
	Title    string `json:"title" form:"title" binding:"required"`
	Content  string `json:"content" form:"content" binding:"required"`
}
