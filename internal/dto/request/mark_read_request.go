package request

// MarkReadRequest 标记通知已读请求
type MarkReadRequest struct {
	NotificationId string `json:"notification_id" form:"notification_id" binding:"required"`
}
