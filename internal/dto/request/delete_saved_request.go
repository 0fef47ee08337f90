package request

// DeleteSavedRequest 删除收藏请求
type DeleteSavedRequest struct {
	SavedId string `json:"saved_id" form:"saved_id" binding:"required"`
}
