package invite

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"elearn_comm_server/internal/dao/mysql"
	"elearn_comm_server/internal/dto/request"
	"elearn_comm_server/internal/service/notification"
	"elearn_comm_server/internal/testutil"
	"elearn_comm_server/pkg/errorx"
)

func newTestService(missingUsers ...string) (*inviteService, *mysql.Repositories, *testutil.FakeNotificationRepository) {
	repos := testutil.NewRepositories()
	notifySvc := notification.NewNotificationService(repos, nil, nil)
	users := &testutil.FakeUserResolver{MissingIds: missingUsers}
	svc := NewInviteService(repos, users, notifySvc)
	return svc, repos, repos.Notify.(*testutil.FakeNotificationRepository)
}

func TestCreateInviteSelfRejected(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.CreateInvite("U1", request.CreateInviteRequest{ToId: "U1"})
	assert.Equal(t, errorx.CodeInvalidParam, errorx.GetCode(err))
}

func TestCreateInviteUnknownUser(t *testing.T) {
	svc, _, _ := newTestService("U404")

	_, err := svc.CreateInvite("U1", request.CreateInviteRequest{ToId: "U404"})
	assert.Equal(t, errorx.CodeInvalidParam, errorx.GetCode(err))
}

func TestCreateInviteNotifiesRecipient(t *testing.T) {
	svc, _, notify := newTestService()

	created, err := svc.CreateInvite("U1", request.CreateInviteRequest{ToId: "U2"})
	require.NoError(t, err)
	assert.Equal(t, "U1", created.FromId)
	assert.Equal(t, "U2", created.ToId)
	assert.Equal(t, 1, notify.CountByRecipient("U2"))

	pending, err := svc.GetPendingInvites("U2")
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, created.InviteId, pending[0].InviteId)
}

func TestRespondInviteAcceptCreatesChat(t *testing.T) {
	svc, repos, _ := newTestService()

	created, err := svc.CreateInvite("U1", request.CreateInviteRequest{ToId: "U2"})
	require.NoError(t, err)

	resolved, err := svc.RespondInvite("U2", request.RespondInviteRequest{
		InviteId: created.InviteId,
		Action:   "accept",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resolved.ChatRoomId)

	chat, err := repos.Chat.FindByUuid(resolved.ChatRoomId)
	require.NoError(t, err)
	assert.True(t, chat.HasParticipant("U1"))
	assert.True(t, chat.HasParticipant("U2"))

	// 已处理的邀请不再出现在待处理列表
	pending, err := svc.GetPendingInvites("U2")
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestRespondInviteRejectSkipsChat(t *testing.T) {
	svc, repos, _ := newTestService()

	created, err := svc.CreateInvite("U1", request.CreateInviteRequest{ToId: "U2"})
	require.NoError(t, err)

	resolved, err := svc.RespondInvite("U2", request.RespondInviteRequest{
		InviteId: created.InviteId,
		Action:   "reject",
	})
	require.NoError(t, err)
	assert.Empty(t, resolved.ChatRoomId)

	chats, err := repos.Chat.FindByParticipant("U1")
	require.NoError(t, err)
	assert.Empty(t, chats)
}

func TestRespondInviteOnlyRecipient(t *testing.T) {
	svc, _, _ := newTestService()

	created, err := svc.CreateInvite("U1", request.CreateInviteRequest{ToId: "U2"})
	require.NoError(t, err)

	_, err = svc.RespondInvite("U3", request.RespondInviteRequest{
		InviteId: created.InviteId,
		Action:   "accept",
	})
	assert.Equal(t, errorx.CodeForbidden, errorx.GetCode(err))

	// 发起人自己也不能应答
	_, err = svc.RespondInvite("U1", request.RespondInviteRequest{
		InviteId: created.InviteId,
		Action:   "accept",
	})
	assert.Equal(t, errorx.CodeForbidden, errorx.GetCode(err))
}

func TestRespondInviteTwiceFails(t *testing.T) {
	svc, _, _ := newTestService()

	created, err := svc.CreateInvite("U1", request.CreateInviteRequest{ToId: "U2"})
	require.NoError(t, err)

	_, err = svc.RespondInvite("U2", request.RespondInviteRequest{
		InviteId: created.InviteId,
		Action:   "accept",
	})
	require.NoError(t, err)

	// 终态不可变，无论重复接受还是改为拒绝
	_, err = svc.RespondInvite("U2", request.RespondInviteRequest{
		InviteId: created.InviteId,
		Action:   "accept",
	})
	assert.Equal(t, errorx.CodeInvalidState, errorx.GetCode(err))
	_, err = svc.RespondInvite("U2", request.RespondInviteRequest{
		InviteId: created.InviteId,
		Action:   "reject",
	})
	assert.Equal(t, errorx.CodeInvalidState, errorx.GetCode(err))
}

func TestConcurrentRespondSingleWinner(t *testing.T) {
	svc, _, _ := newTestService()

	created, err := svc.CreateInvite("U1", request.CreateInviteRequest{ToId: "U2"})
	require.NoError(t, err)

	// 接受与拒绝混合并发应答，条件更新裁决出唯一胜者
	const total = 8
	actions := []string{"accept", "reject"}
	results := make([]error, total)
	var wg sync.WaitGroup
	wg.Add(total)
	for i := 0; i < total; i++ {
		go func(i int) {
			defer wg.Done()
			_, results[i] = svc.RespondInvite("U2", request.RespondInviteRequest{
				InviteId: created.InviteId,
				Action:   actions[i%2],
			})
		}(i)
	}
	wg.Wait()

	winners := 0
	for _, err := range results {
		if err == nil {
			winners++
			continue
		}
		assert.Equal(t, errorx.CodeInvalidState, errorx.GetCode(err))
	}
	assert.Equal(t, 1, winners)

	// 落败方不改变先到者落下的终态
	pending, err := svc.GetPendingInvites("U2")
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestRespondInviteNotFound(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.RespondInvite("U2", request.RespondInviteRequest{
		InviteId: "I0000000000X",
		Action:   "accept",
	})
	assert.Equal(t, errorx.CodeNotFound, errorx.GetCode(err))
}

func TestAcceptReusesExistingChat(t *testing.T) {
	svc, repos, _ := newTestService()

	first, err := svc.CreateInvite("U1", request.CreateInviteRequest{ToId: "U2"})
	require.NoError(t, err)
	second, err := svc.CreateInvite("U2", request.CreateInviteRequest{ToId: "U1"})
	require.NoError(t, err)

	r1, err := svc.RespondInvite("U2", request.RespondInviteRequest{InviteId: first.InviteId, Action: "accept"})
	require.NoError(t, err)
	r2, err := svc.RespondInvite("U1", request.RespondInviteRequest{InviteId: second.InviteId, Action: "accept"})
	require.NoError(t, err)

	// 相同成员集的第二次接受复用既有房间
	assert.Equal(t, r1.ChatRoomId, r2.ChatRoomId)

	chats, err := repos.Chat.FindByParticipant("U1")
	require.NoError(t, err)
	assert.Len(t, chats, 1)
}
