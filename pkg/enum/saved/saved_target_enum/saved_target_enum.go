// Package saved_target_enum 定义收藏目标的类型标签
// 收藏目标建模为带标签的联合：chat 或 forum_thread，二者必居其一
package saved_target_enum

const (
	CHAT         = "chat"         // 收藏聊天室
	FORUM_THREAD = "forum_thread" // 收藏论坛帖子
)
