// Package notification_type_enum 定义通知类型枚举
package notification_type_enum

// 通知类型，创建后不可变更
const (
	MESSAGE      = "MESSAGE"      // 聊天消息通知
	REPLY        = "REPLY"        // 论坛回复通知
	ANNOUNCEMENT = "ANNOUNCEMENT" // 公告通知
)

// Valid 检查通知类型是否合法
func Valid(t string) bool {
	switch t {
	case MESSAGE, REPLY, ANNOUNCEMENT:
		return true
	default:
		return false
	}
}
