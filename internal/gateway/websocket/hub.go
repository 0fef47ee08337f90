package websocket

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// Hub 在线连接集合，登录登出通过通道串行处理
type Hub struct {
	Clients map[string]*Client
	mutex   *sync.Mutex
	Login   chan *Client // 登录通道
	Logout  chan *Client // 退出登录通道
}

var hub *Hub

// Init 创建全局 Hub
func Init() {
	if hub == nil {
		hub = &Hub{
			Clients: make(map[string]*Client),
			mutex:   &sync.Mutex{},
			Login:   make(chan *Client),
			Logout:  make(chan *Client),
		}
	}
}

// GetHub 获取全局 Hub 实例
func GetHub() *Hub {
	return hub
}

// Start 启动登录登出处理循环
func (h *Hub) Start() {
	defer func() {
		if r := recover(); r != nil {
			zap.L().Error(fmt.Sprintf("ws hub panic: %v", r))
		}
	}()

	for {
		select {
		case client, ok := <-h.Login:
			if !ok {
				return
			}
			h.mutex.Lock()
			// 同一用户重复连接时替换旧连接
			if old, ok := h.Clients[client.UserId]; ok && old != client {
				close(old.SendBack)
				_ = old.Conn.Close()
			}
			h.Clients[client.UserId] = client
			h.mutex.Unlock()
			zap.L().Debug(fmt.Sprintf("用户%s上线", client.UserId))

		case client, ok := <-h.Logout:
			if !ok {
				return
			}
			h.mutex.Lock()
			if cur, ok := h.Clients[client.UserId]; ok && cur == client {
				delete(h.Clients, client.UserId)
				close(client.SendBack)
			}
			h.mutex.Unlock()
			zap.L().Info(fmt.Sprintf("用户%s下线", client.UserId))
		}
	}
}

// Close 关闭登录登出通道
func (h *Hub) Close() {
	close(h.Login)
	close(h.Logout)
}

// SendClientToLogin 提交一次登录
func (h *Hub) SendClientToLogin(client *Client) {
	h.Login <- client
}

// SendClientToLogout 提交一次登出
func (h *Hub) SendClientToLogout(client *Client) {
	h.Logout <- client
}

// GetClient 获取指定用户的连接，不在线返回 nil
func (h *Hub) GetClient(userId string) *Client {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	return h.Clients[userId]
}

// SendToUser 向在线用户推送一帧，不在线时静默丢弃
// 落库已经在写入路径完成，推送只是在线加速
func (h *Hub) SendToUser(userId string, payload []byte, uuid string) error {
	h.mutex.Lock()
	client, ok := h.Clients[userId]
	h.mutex.Unlock()
	if !ok {
		return nil
	}
	select {
	case client.SendBack <- &PushFrame{Payload: payload, Uuid: uuid}:
	default:
		zap.L().Warn("ws推送队列已满，丢弃一帧", zap.String("userId", userId))
	}
	return nil
}
