package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"elearn_comm_server/internal/dto/request"
	"elearn_comm_server/internal/testutil"
	"elearn_comm_server/pkg/enum/notification/notification_type_enum"
)

// TestInviteAcceptThenChatFlow 全链路场景：
// U1 邀请 U2 -> U2 接受自动建房 -> U1 发 "hi" -> U2 恰好多出一条消息通知
func TestInviteAcceptThenChatFlow(t *testing.T) {
	repos := testutil.NewRepositories()
	queue := testutil.NewCapturingQueue()
	svc := NewServices(repos, nil, &testutil.FakeUserResolver{}, queue)
	notify := repos.Notify.(*testutil.FakeNotificationRepository)

	invite, err := svc.Invite.CreateInvite("U1", request.CreateInviteRequest{ToId: "U2"})
	require.NoError(t, err)

	resolved, err := svc.Invite.RespondInvite("U2", request.RespondInviteRequest{
		InviteId: invite.InviteId,
		Action:   "accept",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resolved.ChatRoomId)

	before := notify.CountByRecipient("U2")

	sent, err := svc.Chat.SendMessage("U1", request.SendMessageRequest{
		ChatId:  resolved.ChatRoomId,
		Content: "hi",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), sent.Seq)

	// 发送方不收通知，接收方恰好多一条
	assert.Equal(t, before+1, notify.CountByRecipient("U2"))

	unread, err := svc.Notification.GetUnreadList("U2")
	require.NoError(t, err)
	require.NotEmpty(t, unread)
	assert.Equal(t, notification_type_enum.MESSAGE, unread[0].Type)

	// 消息可从双方视角读到
	list, err := svc.Chat.GetMessageList("U2", request.MessageListRequest{ChatId: resolved.ChatRoomId})
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	assert.Equal(t, "hi", list.Items[0].Content)
	assert.Equal(t, "U1", list.Items[0].SenderId)

	// U2 的收件箱也有这条消息
	inbox, err := svc.Chat.GetInbox("U2")
	require.NoError(t, err)
	require.Len(t, inbox, 1)
	assert.Equal(t, "hi", inbox[0].Content)
}
