package websocket

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"elearn_comm_server/pkg/constants"
)

func newTestHub() *Hub {
	return &Hub{
		Clients: make(map[string]*Client),
		mutex:   &sync.Mutex{},
		Login:   make(chan *Client),
		Logout:  make(chan *Client),
	}
}

func TestHubLoginLogout(t *testing.T) {
	h := newTestHub()
	done := make(chan struct{})
	go func() {
		h.Start()
		close(done)
	}()

	client := &Client{UserId: "U1", SendBack: make(chan *PushFrame, constants.CHANNEL_SIZE)}
	h.SendClientToLogin(client)

	require.Eventually(t, func() bool {
		return h.GetClient("U1") == client
	}, time.Second, 10*time.Millisecond)

	require.NoError(t, h.SendToUser("U1", []byte("hello"), "M1"))
	frame := <-client.SendBack
	assert.Equal(t, []byte("hello"), frame.Payload)

	// 离线用户静默丢弃
	require.NoError(t, h.SendToUser("U404", []byte("hello"), "M2"))

	h.SendClientToLogout(client)
	require.Eventually(t, func() bool {
		return h.GetClient("U1") == nil
	}, time.Second, 10*time.Millisecond)

	// 关闭通道后处理循环正常退出
	h.Close()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("hub loop did not stop after Close")
	}
}
