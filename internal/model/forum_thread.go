package model

import (
	"time"

	"gorm.io/gorm"
)

// ForumThread 论坛帖子模型
// 对应数据库 forum_thread 表
type ForumThread struct {
	gorm.Model

	// Uuid 帖子唯一标识，格式：F + 13位时间戳随机字符串
	Uuid string `gorm:"column:uuid;uniqueIndex;type:char(20);not null;comment:帖子id"`

	// CourseId 所属课程 UUID（课程实体由外部协作方维护）
	CourseId string `gorm:"column:course_id;index;type:char(20);not null;comment:课程id"`

	// CreatedBy 发帖人用户 UUID，回复通知发送给此人
	CreatedBy string `gorm:"column:created_by;index;type:char(20);not null;comment:发帖人id"`

	Title   string `gorm:"column:title;type:varchar(100);not null;comment:标题"`
	Content string `gorm:"column:content;type:TEXT;comment:正文"`
}

func (ForumThread) TableName() string {
	return "forum_thread"
}

// ForumReply 帖子回复，只追加不修改
// 对应数据库 forum_reply 表
type ForumReply struct {
	gorm.Model

	Uuid      int64     `gorm:"column:uuid;uniqueIndex;type:bigint;not null;comment:回复雪花ID"`
	ThreadId  string    `gorm:"column:thread_id;index;type:char(20);not null;comment:帖子id"`
	UserId    string    `gorm:"column:user_id;type:char(20);not null;comment:回复人id"`
	Message   string    `gorm:"column:message;type:TEXT;not null;comment:回复内容"`
	RepliedAt time.Time `gorm:"column:replied_at;type:datetime;not null;comment:回复时间"`
}

func (ForumReply) TableName() string {
	return "forum_reply"
}
