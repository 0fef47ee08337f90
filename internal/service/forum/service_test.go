package forum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"elearn_comm_server/internal/dto/request"
	"elearn_comm_server/internal/service/notification"
	"elearn_comm_server/internal/testutil"
	"elearn_comm_server/pkg/enum/notification/notification_type_enum"
	"elearn_comm_server/pkg/errorx"
)

func newTestService() (*forumService, *testutil.FakeNotificationRepository) {
	repos := testutil.NewRepositories()
	notifySvc := notification.NewNotificationService(repos, nil, nil)
	return NewForumService(repos, notifySvc), repos.Notify.(*testutil.FakeNotificationRepository)
}

func TestCreateThread(t *testing.T) {
	svc, _ := newTestService()

	thread, err := svc.CreateThread("U1", request.CreateThreadRequest{
		CourseId: "K1",
		Title:    "作业答疑",
		Content:  "第三题怎么做",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, thread.ThreadId)
	assert.Equal(t, "U1", thread.CreatedBy)
	assert.Empty(t, thread.Replies)
}

func TestReplyNotifiesAuthor(t *testing.T) {
	svc, notify := newTestService()

	thread, err := svc.CreateThread("U1", request.CreateThreadRequest{CourseId: "K1", Title: "答疑"})
	require.NoError(t, err)

	require.NoError(t, svc.Reply("U2", request.ReplyThreadRequest{
		ThreadId: thread.ThreadId,
		Message:  "用换元法",
	}))

	assert.Equal(t, 1, notify.CountByRecipient("U1"))
	list, err := notify.FindUnreadByRecipient("U1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, notification_type_enum.REPLY, list[0].Type)
}

func TestSelfReplyNoNotification(t *testing.T) {
	svc, notify := newTestService()

	thread, err := svc.CreateThread("U1", request.CreateThreadRequest{CourseId: "K1", Title: "答疑"})
	require.NoError(t, err)

	require.NoError(t, svc.Reply("U1", request.ReplyThreadRequest{
		ThreadId: thread.ThreadId,
		Message:  "补充说明",
	}))
	assert.Equal(t, 0, notify.CountByRecipient("U1"))
}

func TestReplyMissingThread(t *testing.T) {
	svc, _ := newTestService()

	err := svc.Reply("U2", request.ReplyThreadRequest{ThreadId: "F0000000000X", Message: "hi"})
	assert.Equal(t, errorx.CodeNotFound, errorx.GetCode(err))
}

func TestGetThreadWithReplies(t *testing.T) {
	svc, _ := newTestService()

	thread, err := svc.CreateThread("U1", request.CreateThreadRequest{CourseId: "K1", Title: "答疑"})
	require.NoError(t, err)

	require.NoError(t, svc.Reply("U2", request.ReplyThreadRequest{ThreadId: thread.ThreadId, Message: "第一条"}))
	require.NoError(t, svc.Reply("U3", request.ReplyThreadRequest{ThreadId: thread.ThreadId, Message: "第二条"}))

	detail, err := svc.GetThread(thread.ThreadId)
	require.NoError(t, err)
	require.Len(t, detail.Replies, 2)
	// 回复按时间升序
	assert.Equal(t, "第一条", detail.Replies[0].Message)
	assert.Equal(t, "第二条", detail.Replies[1].Message)
}

func TestGetThreadNotFound(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.GetThread("F0000000000X")
	assert.Equal(t, errorx.CodeNotFound, errorx.GetCode(err))
}

func TestListByCourse(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.CreateThread("U1", request.CreateThreadRequest{CourseId: "K1", Title: "帖子A"})
	require.NoError(t, err)
	_, err = svc.CreateThread("U2", request.CreateThreadRequest{CourseId: "K1", Title: "帖子B"})
	require.NoError(t, err)
	_, err = svc.CreateThread("U1", request.CreateThreadRequest{CourseId: "K2", Title: "别的课程"})
	require.NoError(t, err)

	list, err := svc.ListByCourse("K1")
	require.NoError(t, err)
	assert.Len(t, list, 2)

	other, err := svc.ListByCourse("K3")
	require.NoError(t, err)
	assert.Empty(t, other)
}
