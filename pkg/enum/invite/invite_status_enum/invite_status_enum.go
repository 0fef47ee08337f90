// Package invite_status_enum 定义邀请状态枚举
package invite_status_enum

// 邀请状态
// PENDING 为初始态，ACCEPTED/REJECTED 为终态，终态不可再变更
const (
	PENDING  int8 = iota // 待处理
	ACCEPTED             // 已接受
	REJECTED             // 已拒绝
)

// Label 返回对外展示用的状态文本
func Label(status int8) string {
	switch status {
	case PENDING:
		return "pending"
	case ACCEPTED:
		return "accepted"
	case REJECTED:
		return "rejected"
	default:
		return "unknown"
	}
}
