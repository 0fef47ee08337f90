package mysql

import (
	"fmt"

	"elearn_comm_server/internal/model"

	"gorm.io/gorm"
)

type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository 创建独立消息 Repository
func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

// Create 创建消息
func (r *messageRepository) Create(message *model.Message) error {
	if err := r.db.Create(message).Error; err != nil {
		return wrapDBError(err, "创建消息")
	}
	return nil
}

// FindByReceiver 查找发给指定用户的消息（收件箱路径），按创建时间倒序
func (r *messageRepository) FindByReceiver(userId string) ([]model.Message, error) {
	var messages []model.Message
	if err := r.db.Where("JSON_CONTAINS(receivers, ?)", fmt.Sprintf("%q", userId)).
		Order("created_at DESC").Find(&messages).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询收件箱 user_id=%s", userId)
	}
	return messages, nil
}
