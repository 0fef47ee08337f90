// Package model 定义数据库实体模型
// 本文件定义认证会话模型，一条记录对应一次登录产生的一个客户端上下文
package model

import (
	"time"

	"gorm.io/gorm"
)

// Session 认证会话模型
// 对应数据库 session 表
// 同一用户允许多条未过期会话并存（多端登录）；过期或被撤销的会话视为不存在
type Session struct {
	gorm.Model // 内嵌 GORM 模型，包含 ID、CreatedAt、UpdatedAt、DeletedAt

	// Uuid 会话令牌，同时作为对外的 sessionId
	Uuid string `gorm:"column:uuid;uniqueIndex;type:char(36);not null;comment:会话令牌"`

	// UserId 会话所属用户 UUID（弱引用，用户实体由外部协作方维护）
	UserId string `gorm:"column:user_id;index;type:char(20);not null;comment:所属用户id"`

	// ExpiresAt 过期时间，创建时由 now + ttl 得出，之后不再变更
	ExpiresAt time.Time `gorm:"column:expires_at;index;type:datetime;not null;comment:过期时间"`

	// IpAddress 发起登录的客户端 IP
	// 开启 encryptClientMeta 时存储 AES-GCM 密文
	IpAddress string `gorm:"column:ip_address;type:varchar(255);comment:客户端IP"`

	// UserAgent 客户端标识字符串，同上可加密存储
	UserAgent string `gorm:"column:user_agent;type:varchar(512);comment:客户端UA"`
}

// TableName 指定表名
func (Session) TableName() string {
	return "session"
}

// ExpiredAt 判断会话在给定时刻是否已过期
// 过期判断必须使用校验时刻的 now，而不是创建时刻
func (s *Session) ExpiredAt(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
