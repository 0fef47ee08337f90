package mysql

import (
	"elearn_comm_server/internal/model"

	"gorm.io/gorm"
)

type forumRepository struct {
	db *gorm.DB
}

// NewForumRepository 创建论坛 Repository
func NewForumRepository(db *gorm.DB) ForumRepository {
	return &forumRepository{db: db}
}

// FindThreadByUuid 根据 UUID 查找帖子
func (r *forumRepository) FindThreadByUuid(uuid string) (*model.ForumThread, error) {
	var thread model.ForumThread
	if err := r.db.First(&thread, "uuid = ?", uuid).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询帖子 uuid=%s", uuid)
	}
	return &thread, nil
}

// FindThreadsByCourse 查找课程下的帖子列表，最新的在前
func (r *forumRepository) FindThreadsByCourse(courseId string) ([]model.ForumThread, error) {
	var threads []model.ForumThread
	if err := r.db.Where("course_id = ?", courseId).
		Order("created_at DESC").Find(&threads).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询课程帖子 course_id=%s", courseId)
	}
	return threads, nil
}

// CreateThread 创建帖子
func (r *forumRepository) CreateThread(thread *model.ForumThread) error {
	if err := r.db.Create(thread).Error; err != nil {
		return wrapDBError(err, "创建帖子")
	}
	return nil
}

// CreateReply 追加一条回复
func (r *forumRepository) CreateReply(reply *model.ForumReply) error {
	if err := r.db.Create(reply).Error; err != nil {
		return wrapDBError(err, "创建回复")
	}
	return nil
}

// FindRepliesByThread 按回复时间升序返回帖子的全部回复
func (r *forumRepository) FindRepliesByThread(threadId string) ([]model.ForumReply, error) {
	var replies []model.ForumReply
	if err := r.db.Where("thread_id = ?", threadId).
		Order("replied_at ASC").Find(&replies).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询帖子回复 thread_id=%s", threadId)
	}
	return replies, nil
}
