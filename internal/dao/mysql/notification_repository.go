// Package mysql 提供数据访问层的具体实现
// 本文件实现 NotificationRepository 接口
package mysql

import (
	"elearn_comm_server/internal/model"

	"gorm.io/gorm"
)

type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository 创建 NotificationRepository 实例
func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

// FindByUuid 根据 UUID 查找通知
func (r *notificationRepository) FindByUuid(uuid string) (*model.Notification, error) {
	var notification model.Notification
	if err := r.db.First(&notification, "uuid = ?", uuid).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询通知 uuid=%s", uuid)
	}
	return &notification, nil
}

// FindUnreadByRecipient 查找接收者的未读通知，最新的在前
func (r *notificationRepository) FindUnreadByRecipient(recipientId string) ([]model.Notification, error) {
	var notifications []model.Notification
	if err := r.db.Where("recipient_id = ? AND is_read = ?", recipientId, false).
		Order("created_at DESC").Find(&notifications).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询未读通知 recipient_id=%s", recipientId)
	}
	return notifications, nil
}

// FindByRecipient 查找接收者的全部通知，最新的在前
func (r *notificationRepository) FindByRecipient(recipientId string) ([]model.Notification, error) {
	var notifications []model.Notification
	if err := r.db.Where("recipient_id = ?", recipientId).
		Order("created_at DESC").Find(&notifications).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询通知列表 recipient_id=%s", recipientId)
	}
	return notifications, nil
}

// Create 创建通知
func (r *notificationRepository) Create(notification *model.Notification) error {
	if err := r.db.Create(notification).Error; err != nil {
		return wrapDBError(err, "创建通知")
	}
	return nil
}

// MarkRead 将通知置为已读
// 已读通知重复置位是无操作，不报错
func (r *notificationRepository) MarkRead(uuid string) error {
	if err := r.db.Model(&model.Notification{}).Where("uuid = ?", uuid).
		Update("is_read", true).Error; err != nil {
		return wrapDBErrorf(err, "标记通知已读 uuid=%s", uuid)
	}
	return nil
}
