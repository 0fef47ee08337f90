package request

// MessageListRequest 拉取房间消息请求
// AfterSeq 为游标，传上一页最后一条的 seq，0 表示从头开始
type MessageListRequest struct {
	ChatId   string `json:"chat_id" form:"chat_id" binding:"required"`
	AfterSeq int64  `json:"after_seq" form:"after_seq" binding:"omitempty,gte=0"`
	Limit    int    `json:"limit" form:"limit" binding:"omitempty,gte=1,lte=200"`
}
