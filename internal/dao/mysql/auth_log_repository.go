package mysql

import (
	"elearn_comm_server/internal/model"

	"gorm.io/gorm"
)

type authLogRepository struct {
	db *gorm.DB
}

// NewAuthLogRepository 创建认证审计日志 Repository
func NewAuthLogRepository(db *gorm.DB) AuthLogRepository {
	return &authLogRepository{db: db}
}

// Create 追加一条审计日志
func (r *authLogRepository) Create(log *model.AuthLog) error {
	if err := r.db.Create(log).Error; err != nil {
		return wrapDBError(err, "写入认证日志")
	}
	return nil
}
