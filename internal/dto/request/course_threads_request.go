package request

// CourseThreadsRequest 获取课程讨论帖列表请求
type CourseThreadsRequest struct {
	CourseId string `json:"course_id" form:"course_id" binding:"required"`
}
