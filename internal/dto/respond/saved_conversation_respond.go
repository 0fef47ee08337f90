package respond

// SavedConversationRespond 收藏列表项
type SavedConversationRespond struct {
	SavedId    string `json:"saved_id"`
	TargetType string `json:"target_type"`
	TargetId   string `json:"target_id"`
	SavedAt    string `json:"saved_at"`
}
