// Package mysql 提供数据访问层的具体实现
// 本文件实现 SessionRepository 接口，处理认证会话相关的数据库操作
package mysql

import (
	"time"

	"elearn_comm_server/internal/model"

	"gorm.io/gorm"
)

// sessionRepository SessionRepository 接口的实现
type sessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository 创建 SessionRepository 实例
func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

// FindByUuid 根据会话令牌查找会话
func (r *sessionRepository) FindByUuid(uuid string) (*model.Session, error) {
	var session model.Session
	if err := r.db.First(&session, "uuid = ?", uuid).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询会话 uuid=%s", uuid)
	}
	return &session, nil
}

// Create 创建会话
func (r *sessionRepository) Create(session *model.Session) error {
	if err := r.db.Create(session).Error; err != nil {
		return wrapDBError(err, "创建会话")
	}
	return nil
}

// DeleteByUuid 软删除会话
// 目标不存在时同样返回 nil，撤销操作保持幂等
func (r *sessionRepository) DeleteByUuid(uuid string) error {
	if err := r.db.Where("uuid = ?", uuid).Delete(&model.Session{}).Error; err != nil {
		return wrapDBErrorf(err, "删除会话 uuid=%s", uuid)
	}
	return nil
}

// DeleteExpired 批量软删除过期会话，供后台清理任务调用
func (r *sessionRepository) DeleteExpired(now time.Time) (int64, error) {
	res := r.db.Where("expires_at < ?", now).Delete(&model.Session{})
	if res.Error != nil {
		return 0, wrapDBError(res.Error, "清理过期会话")
	}
	return res.RowsAffected, nil
}
