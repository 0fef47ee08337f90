package request

// UpdateSavedRequest 更新收藏请求
// ChatId/ThreadId 留空时只刷新收藏时间，不改指向
type UpdateSavedRequest struct {
	SavedId  string `json:"saved_id" form:"saved_id" binding:"required"`
	ChatId   string `json:"chat_id" form:"chat_id"`
	ThreadId string `json:"thread_id" form:"thread_id"`
}
