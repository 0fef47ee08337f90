package chat

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"elearn_comm_server/internal/config"
	"elearn_comm_server/internal/dao/mysql"
	"elearn_comm_server/internal/dto/request"
	"elearn_comm_server/internal/infrastructure/mq"
	"elearn_comm_server/internal/service/notification"
	"elearn_comm_server/internal/testutil"
	"elearn_comm_server/pkg/errorx"
)

func newTestService(queue mq.EventQueue) (*chatService, *mysql.Repositories, *testutil.FakeNotificationRepository) {
	repos := testutil.NewRepositories()
	notifySvc := notification.NewNotificationService(repos, queue, nil)
	svc := NewChatService(repos, &testutil.FakeUserResolver{}, notifySvc, queue)
	return svc, repos, repos.Notify.(*testutil.FakeNotificationRepository)
}

func mustCreateChat(t *testing.T, svc *chatService, creator string, participants []string) string {
	t.Helper()
	created, err := svc.CreateChat(creator, request.CreateChatRequest{Participants: participants})
	require.NoError(t, err)
	return created.ChatId
}

func TestCreateChatEmptyParticipants(t *testing.T) {
	svc, _, _ := newTestService(nil)

	_, err := svc.CreateChat("U1", request.CreateChatRequest{Participants: []string{"  ", ""}})
	assert.Equal(t, errorx.CodeInvalidParam, errorx.GetCode(err))
}

func TestCreateChatDedupPolicy(t *testing.T) {
	svc, _, _ := newTestService(nil)

	conf := config.GetConfig()
	conf.ChatConfig.DedupRooms = true
	defer func() { conf.ChatConfig.DedupRooms = false }()

	first, err := svc.CreateChat("U1", request.CreateChatRequest{Participants: []string{"U1", "U2"}})
	require.NoError(t, err)
	assert.NotEmpty(t, first.ChatId)

	// 成员顺序不同仍视为相同成员集
	_, err = svc.CreateChat("U2", request.CreateChatRequest{Participants: []string{"U2", "U1"}})
	assert.Equal(t, errorx.CodeInvalidState, errorx.GetCode(err))
}

func TestCreateChatDuplicatesAllowedByDefault(t *testing.T) {
	svc, _, _ := newTestService(nil)

	first, err := svc.CreateChat("U1", request.CreateChatRequest{Participants: []string{"U1", "U2"}})
	require.NoError(t, err)
	second, err := svc.CreateChat("U1", request.CreateChatRequest{Participants: []string{"U1", "U2"}})
	require.NoError(t, err)
	assert.NotEqual(t, first.ChatId, second.ChatId)
}

func TestSendMessageOrdering(t *testing.T) {
	svc, _, _ := newTestService(nil)
	chatId := mustCreateChat(t, svc, "U1", []string{"U1", "U2"})

	for i := 1; i <= 3; i++ {
		sent, err := svc.SendMessage("U1", request.SendMessageRequest{
			ChatId:  chatId,
			Content: fmt.Sprintf("消息%d", i),
		})
		require.NoError(t, err)
		assert.Equal(t, int64(i), sent.Seq)
	}

	list, err := svc.GetMessageList("U2", request.MessageListRequest{ChatId: chatId})
	require.NoError(t, err)
	require.Len(t, list.Items, 3)
	for i, item := range list.Items {
		assert.Equal(t, int64(i+1), item.Seq)
		assert.Equal(t, fmt.Sprintf("消息%d", i+1), item.Content)
	}

	// 时间戳单调不减
	for i := 1; i < len(list.Items); i++ {
		assert.GreaterOrEqual(t, list.Items[i].SentAt, list.Items[i-1].SentAt)
	}
}

func TestSendMessageValidation(t *testing.T) {
	svc, _, _ := newTestService(nil)
	chatId := mustCreateChat(t, svc, "U1", []string{"U1", "U2"})

	_, err := svc.SendMessage("U1", request.SendMessageRequest{ChatId: chatId, Content: "   "})
	assert.Equal(t, errorx.CodeInvalidParam, errorx.GetCode(err))

	_, err = svc.SendMessage("U3", request.SendMessageRequest{ChatId: chatId, Content: "hi"})
	assert.Equal(t, errorx.CodeForbidden, errorx.GetCode(err))

	_, err = svc.SendMessage("U1", request.SendMessageRequest{ChatId: "C0000000000X", Content: "hi"})
	assert.Equal(t, errorx.CodeNotFound, errorx.GetCode(err))
}

func TestSendMessageNotifiesOtherMembers(t *testing.T) {
	queue := testutil.NewCapturingQueue()
	svc, _, notify := newTestService(queue)
	chatId := mustCreateChat(t, svc, "U1", []string{"U1", "U2", "U3"})

	// 三人房间发 3 条消息，发送者之外每人每条一个通知
	for i := 0; i < 3; i++ {
		_, err := svc.SendMessage("U1", request.SendMessageRequest{ChatId: chatId, Content: "hello"})
		require.NoError(t, err)
	}

	assert.Equal(t, 0, notify.CountByRecipient("U1"))
	assert.Equal(t, 3, notify.CountByRecipient("U2"))
	assert.Equal(t, 3, notify.CountByRecipient("U3"))

	// 全部未读
	unread, err := notify.FindUnreadByRecipient("U2")
	require.NoError(t, err)
	assert.Len(t, unread, 3)

	// 每个接收者同时收到一条在线推送事件
	chatEvents := 0
	for _, ev := range queue.Events() {
		if ev.Kind == mq.EventChatMessage {
			chatEvents++
			assert.NotEqual(t, "U1", ev.RecipientId)
		}
	}
	assert.Equal(t, 6, chatEvents)
}

func TestConcurrentAppendNoLoss(t *testing.T) {
	svc, repos, _ := newTestService(nil)
	chatId := mustCreateChat(t, svc, "U1", []string{"U1", "U2"})

	const total = 20
	senders := []string{"U1", "U2"}
	var wg sync.WaitGroup
	wg.Add(total)
	for i := 0; i < total; i++ {
		go func(i int) {
			defer wg.Done()
			_, err := svc.SendMessage(senders[i%2], request.SendMessageRequest{
				ChatId:  chatId,
				Content: fmt.Sprintf("并发消息%d", i),
			})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	count, err := repos.ChatMessage.CountByChat(chatId)
	require.NoError(t, err)
	assert.Equal(t, int64(total), count)

	// 序号连续无空洞
	list, err := svc.GetMessageList("U1", request.MessageListRequest{ChatId: chatId, Limit: total})
	require.NoError(t, err)
	require.Len(t, list.Items, total)
	for i, item := range list.Items {
		assert.Equal(t, int64(i+1), item.Seq)
	}
}

func TestGetMessageListPagination(t *testing.T) {
	svc, _, _ := newTestService(nil)
	chatId := mustCreateChat(t, svc, "U1", []string{"U1", "U2"})

	for i := 1; i <= 5; i++ {
		_, err := svc.SendMessage("U1", request.SendMessageRequest{ChatId: chatId, Content: fmt.Sprintf("m%d", i)})
		require.NoError(t, err)
	}

	page1, err := svc.GetMessageList("U2", request.MessageListRequest{ChatId: chatId, Limit: 2})
	require.NoError(t, err)
	require.Len(t, page1.Items, 2)
	assert.Equal(t, int64(2), page1.NextCursor)

	page2, err := svc.GetMessageList("U2", request.MessageListRequest{ChatId: chatId, AfterSeq: page1.NextCursor, Limit: 2})
	require.NoError(t, err)
	require.Len(t, page2.Items, 2)
	assert.Equal(t, int64(3), page2.Items[0].Seq)

	page3, err := svc.GetMessageList("U2", request.MessageListRequest{ChatId: chatId, AfterSeq: page2.NextCursor, Limit: 2})
	require.NoError(t, err)
	require.Len(t, page3.Items, 1)

	// 读空页时游标原地不动
	empty, err := svc.GetMessageList("U2", request.MessageListRequest{ChatId: chatId, AfterSeq: page3.NextCursor, Limit: 2})
	require.NoError(t, err)
	assert.Empty(t, empty.Items)
	assert.Equal(t, page3.NextCursor, empty.NextCursor)
}

func TestGetMessageListNonMember(t *testing.T) {
	svc, _, _ := newTestService(nil)
	chatId := mustCreateChat(t, svc, "U1", []string{"U1", "U2"})

	_, err := svc.GetMessageList("U3", request.MessageListRequest{ChatId: chatId})
	assert.Equal(t, errorx.CodeForbidden, errorx.GetCode(err))
}

func TestGetUserChatsAndInbox(t *testing.T) {
	svc, _, _ := newTestService(nil)
	chatId := mustCreateChat(t, svc, "U1", []string{"U1", "U2"})
	mustCreateChat(t, svc, "U1", []string{"U1", "U3"})

	_, err := svc.SendMessage("U1", request.SendMessageRequest{ChatId: chatId, Content: "给U2的消息"})
	require.NoError(t, err)

	chats, err := svc.GetUserChats("U1")
	require.NoError(t, err)
	assert.Len(t, chats, 2)

	inbox, err := svc.GetInbox("U2")
	require.NoError(t, err)
	require.Len(t, inbox, 1)
	assert.Equal(t, "给U2的消息", inbox[0].Content)
	assert.Equal(t, "U1", inbox[0].SenderId)

	// 发送者自己的收件箱不包含这条消息
	senderInbox, err := svc.GetInbox("U1")
	require.NoError(t, err)
	assert.Empty(t, senderInbox)
}
