package respond

// NotificationRespond 通知列表项
// 使用位置:
//   - internal/service/notification: GetUnreadList, GetAllList
type NotificationRespond struct {
	NotificationId string `json:"notification_id"`
	Type           string `json:"type"`
	Message        string `json:"message"`
	Read           bool   `json:"read"`
	CreatedAt      string `json:"created_at"`
}
