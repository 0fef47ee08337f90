package request

// AnnounceRequest 公告广播请求
type AnnounceRequest struct {
	RecipientIds []string `json:"recipient_ids" form:"recipient_ids" binding:"required,min=1,dive,required"`
	Message      string   `json:"message" form:"message" binding:"required"`
}
