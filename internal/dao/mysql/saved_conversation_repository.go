package mysql

import (
	"elearn_comm_server/internal/model"

	"gorm.io/gorm"
)

type savedConversationRepository struct {
	db *gorm.DB
}

// NewSavedConversationRepository 创建会话收藏 Repository
func NewSavedConversationRepository(db *gorm.DB) SavedConversationRepository {
	return &savedConversationRepository{db: db}
}

// FindByUuid 根据 UUID 查找收藏
func (r *savedConversationRepository) FindByUuid(uuid string) (*model.SavedConversation, error) {
	var saved model.SavedConversation
	if err := r.db.First(&saved, "uuid = ?", uuid).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询收藏 uuid=%s", uuid)
	}
	return &saved, nil
}

// FindByUserId 查找用户的收藏列表，按收藏时间倒序
func (r *savedConversationRepository) FindByUserId(userId string) ([]model.SavedConversation, error) {
	var list []model.SavedConversation
	if err := r.db.Where("user_id = ?", userId).
		Order("saved_at DESC").Find(&list).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询收藏列表 user_id=%s", userId)
	}
	return list, nil
}

// Create 创建收藏
func (r *savedConversationRepository) Create(saved *model.SavedConversation) error {
	if err := r.db.Create(saved).Error; err != nil {
		return wrapDBError(err, "创建收藏")
	}
	return nil
}

// Update 更新收藏（全字段更新）
func (r *savedConversationRepository) Update(saved *model.SavedConversation) error {
	if err := r.db.Save(saved).Error; err != nil {
		return wrapDBError(err, "更新收藏")
	}
	return nil
}

// DeleteByUuid 软删除收藏
func (r *savedConversationRepository) DeleteByUuid(uuid string) error {
	if err := r.db.Where("uuid = ?", uuid).Delete(&model.SavedConversation{}).Error; err != nil {
		return wrapDBErrorf(err, "删除收藏 uuid=%s", uuid)
	}
	return nil
}
