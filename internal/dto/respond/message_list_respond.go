package respond

// MessageListRespond 房间消息列表项
type MessageListRespond struct {
	Seq      int64  `json:"seq"`
	SenderId string `json:"sender_id"`
	Content  string `json:"content"`
	SentAt   string `json:"sent_at"`
}

// MessageListWrapper 房间消息分页结果
// NextCursor 传回下一页的 after_seq，没有更多数据时与请求游标相同
type MessageListWrapper struct {
	Items      []MessageListRespond `json:"items"`
	NextCursor int64                `json:"next_cursor"`
}
