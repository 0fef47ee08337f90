package model

import (
	"gorm.io/gorm"
)

// AuthLog 认证审计日志
// 对应数据库 auth_log 表
// 只追加写入，本服务不回读；供外部审计系统消费
type AuthLog struct {
	gorm.Model

	Uuid      string `gorm:"column:uuid;uniqueIndex;type:char(20);not null;comment:日志id"`
	UserId    string `gorm:"column:user_id;index;type:char(20);not null;comment:用户id"`
	SessionId string `gorm:"column:session_id;type:char(36);comment:关联会话"`
	// Action 动作类型，取值见 pkg/enum/auth/auth_action_enum
	Action    string `gorm:"column:action;type:char(20);not null;comment:动作类型"`
	Success   bool   `gorm:"column:success;not null;comment:是否成功"`
	IpAddress string `gorm:"column:ip_address;type:varchar(255);comment:客户端IP"`
}

func (AuthLog) TableName() string {
	return "auth_log"
}
