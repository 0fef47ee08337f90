package notification

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"elearn_comm_server/internal/dao/mysql"
	"elearn_comm_server/internal/dto/request"
	"elearn_comm_server/internal/infrastructure/mq"
	"elearn_comm_server/internal/testutil"
	"elearn_comm_server/pkg/enum/notification/notification_type_enum"
	"elearn_comm_server/pkg/errorx"
)

func newTestService(queue mq.EventQueue) (*notificationService, *mysql.Repositories, *testutil.FakeNotificationRepository) {
	repos := testutil.NewRepositories()
	svc := NewNotificationService(repos, queue, nil)
	return svc, repos, repos.Notify.(*testutil.FakeNotificationRepository)
}

func TestDispatchAndList(t *testing.T) {
	svc, _, _ := newTestService(nil)

	svc.Dispatch("U1", notification_type_enum.MESSAGE, "新消息")
	svc.Dispatch("U1", notification_type_enum.REPLY, "帖子有回复")
	svc.Dispatch("U2", notification_type_enum.MESSAGE, "别人的通知")

	list, err := svc.GetUnreadList("U1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	// 最新的在前
	assert.Equal(t, notification_type_enum.REPLY, list[0].Type)
	assert.Equal(t, notification_type_enum.MESSAGE, list[1].Type)
	for _, n := range list {
		assert.False(t, n.Read)
	}
}

func TestDispatchInvalidTypeDropped(t *testing.T) {
	svc, _, fake := newTestService(nil)

	svc.Dispatch("U1", "BOGUS_TYPE", "不应入库")
	assert.Equal(t, 0, fake.CountByRecipient("U1"))
}

func TestDispatchRetriesOnFailure(t *testing.T) {
	svc, _, fake := newTestService(nil)

	// 前两次写入失败，第三次成功
	fake.FailCreates = 2
	svc.Dispatch("U1", notification_type_enum.MESSAGE, "重试后写入")
	assert.Equal(t, 1, fake.CountByRecipient("U1"))
}

func TestDispatchGivesUpAfterMaxRetry(t *testing.T) {
	svc, _, fake := newTestService(nil)

	fake.FailCreates = 10
	svc.Dispatch("U1", notification_type_enum.MESSAGE, "永远失败")
	assert.Equal(t, 0, fake.CountByRecipient("U1"))
}

func TestDispatchPublishesPushEvent(t *testing.T) {
	queue := testutil.NewCapturingQueue()
	svc, _, _ := newTestService(queue)

	svc.Dispatch("U1", notification_type_enum.MESSAGE, "推送事件")

	events := queue.Events()
	require.Len(t, events, 1)
	assert.Equal(t, mq.EventNotification, events[0].Kind)
	assert.Equal(t, "U1", events[0].RecipientId)
}

func TestMarkReadIdempotent(t *testing.T) {
	svc, _, _ := newTestService(nil)

	svc.Dispatch("U1", notification_type_enum.MESSAGE, "待已读")
	list, err := svc.GetUnreadList("U1")
	require.NoError(t, err)
	require.Len(t, list, 1)

	req := request.MarkReadRequest{NotificationId: list[0].NotificationId}
	require.NoError(t, svc.MarkRead("U1", req))

	unread, err := svc.GetUnreadList("U1")
	require.NoError(t, err)
	assert.Empty(t, unread)

	// 重复标记仍然成功，读标记不回退
	require.NoError(t, svc.MarkRead("U1", req))

	all, err := svc.GetAllList("U1")
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.True(t, all[0].Read)
}

func TestMarkReadOnlyRecipient(t *testing.T) {
	svc, _, _ := newTestService(nil)

	svc.Dispatch("U1", notification_type_enum.MESSAGE, "U1的通知")
	list, err := svc.GetUnreadList("U1")
	require.NoError(t, err)
	require.Len(t, list, 1)

	err = svc.MarkRead("U2", request.MarkReadRequest{NotificationId: list[0].NotificationId})
	assert.Equal(t, errorx.CodeForbidden, errorx.GetCode(err))
}

func TestMarkReadNotFound(t *testing.T) {
	svc, _, _ := newTestService(nil)

	err := svc.MarkRead("U1", request.MarkReadRequest{NotificationId: "N0000000000X"})
	assert.Equal(t, errorx.CodeNotFound, errorx.GetCode(err))
}

func TestAnnounceFansOut(t *testing.T) {
	svc, _, fake := newTestService(nil)

	err := svc.Announce(request.AnnounceRequest{
		RecipientIds: []string{"U1", "U2", "U3"},
		Message:      "系统维护公告",
	})
	require.NoError(t, err)

	for _, userId := range []string{"U1", "U2", "U3"} {
		assert.Equal(t, 1, fake.CountByRecipient(userId))
		list, err := svc.GetUnreadList(userId)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, notification_type_enum.ANNOUNCEMENT, list[0].Type)
		assert.Equal(t, "系统维护公告", list[0].Message)
	}
}
