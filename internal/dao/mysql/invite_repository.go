// Package mysql 提供数据访问层的具体实现
// 本文件实现 InviteRepository 接口，处理邀请相关的数据库操作
package mysql

import (
	"elearn_comm_server/internal/model"
	"elearn_comm_server/pkg/enum/invite/invite_status_enum"

	"gorm.io/gorm"
)

// inviteRepository InviteRepository 接口的实现
type inviteRepository struct {
	db *gorm.DB
}

// NewInviteRepository 创建 InviteRepository 实例
func NewInviteRepository(db *gorm.DB) InviteRepository {
	return &inviteRepository{db: db}
}

// FindByUuid 根据 UUID 查找邀请
func (r *inviteRepository) FindByUuid(uuid string) (*model.Invite, error) {
	var invite model.Invite
	if err := r.db.First(&invite, "uuid = ?", uuid).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询邀请 uuid=%s", uuid)
	}
	return &invite, nil
}

// FindPendingByToId 查找接收人的待处理邀请列表
func (r *inviteRepository) FindPendingByToId(toId string) ([]model.Invite, error) {
	var invites []model.Invite
	if err := r.db.Where("to_id = ? AND status = ?", toId, invite_status_enum.PENDING).
		Order("created_at DESC").Find(&invites).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询待处理邀请 to_id=%s", toId)
	}
	return invites, nil
}

// Create 创建新邀请
func (r *inviteRepository) Create(invite *model.Invite) error {
	if err := r.db.Create(invite).Error; err != nil {
		return wrapDBError(err, "创建邀请")
	}
	return nil
}

// ResolveIfPending 条件更新邀请为终态
// 单条 UPDATE 同时写入 status 和 chat_room_id，WHERE 带 pending 前置条件，
// 并发双写时只有一方的 RowsAffected 为 1，落败方据此观察到 AlreadyResolved
func (r *inviteRepository) ResolveIfPending(uuid string, status int8, chatRoomId string) (bool, error) {
	updates := map[string]interface{}{"status": status}
	if chatRoomId != "" {
		updates["chat_room_id"] = chatRoomId
	}
	res := r.db.Model(&model.Invite{}).
		Where("uuid = ? AND status = ?", uuid, invite_status_enum.PENDING).
		Updates(updates)
	if res.Error != nil {
		return false, wrapDBErrorf(res.Error, "更新邀请状态 uuid=%s", uuid)
	}
	return res.RowsAffected > 0, nil
}
