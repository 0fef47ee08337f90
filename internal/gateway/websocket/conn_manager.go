// Package websocket 管理与在线用户的长连接
// 连接只做下行推送，聊天消息与通知通过 HTTP 写入后经事件队列送达
package websocket

import (
	"net/http"

	"elearn_comm_server/pkg/constants"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// PushFrame 一次下行推送
type PushFrame struct {
	Payload []byte
	Uuid    string
}

// Client 一条在线用户连接
type Client struct {
	Conn     *websocket.Conn
	UserId   string
	SendBack chan *PushFrame // 给前端
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  2048,
	WriteBufferSize: 2048,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Read 读取 websocket 上行帧
// 客户端只发心跳，读到任何错误即视为断线
func (c *Client) Read() {
	zap.L().Info("ws read goroutine start", zap.String("userId", c.UserId))
	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			zap.L().Info("ws连接断开", zap.String("userId", c.UserId), zap.Error(err))
			if hub := GetHub(); hub != nil {
				hub.SendClientToLogout(c)
			}
			return
		}
	}
}

// Write 从 SendBack 通道读取消息发送给 websocket
func (c *Client) Write() {
	zap.L().Info("ws write goroutine start", zap.String("userId", c.UserId))
	for frame := range c.SendBack {
		if err := c.Conn.WriteMessage(websocket.TextMessage, frame.Payload); err != nil {
			zap.L().Error(err.Error())
			return
		}
	}
}

// NewClientInit 前端建立连接时调用，升级为 websocket 并注册到 Hub
func NewClientInit(c *gin.Context, userId string) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		zap.L().Error(err.Error())
		return
	}
	client := &Client{
		Conn:     conn,
		UserId:   userId,
		SendBack: make(chan *PushFrame, constants.CHANNEL_SIZE),
	}
	if hub := GetHub(); hub != nil {
		hub.SendClientToLogin(client)
	} else {
		zap.L().Error("Hub not initialized")
	}
	go client.Read()
	go client.Write()
	zap.L().Info("ws连接成功", zap.String("userId", userId))
}

// ClientLogout 前端登出时调用，注销并关闭连接
func ClientLogout(userId string) error {
	hub := GetHub()
	if hub == nil {
		zap.L().Error("Hub not initialized")
		return nil
	}
	client := hub.GetClient(userId)
	if client != nil {
		hub.SendClientToLogout(client)
		if err := client.Conn.Close(); err != nil {
			zap.L().Error(err.Error())
			return err
		}
	}
	return nil
}
