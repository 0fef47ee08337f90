// Package mq 提供下行事件的发布与分发
// 单机模式走进程内通道，分布式模式走 Kafka
package mq

import (
	"context"
	"encoding/json"
)

// 事件类型
const (
	EventChatMessage  = "chat_message"
	EventNotification = "notification"
)

// PushEvent 一条待推送的下行事件
type PushEvent struct {
	Kind        string          `json:"kind"`        // chat_message / notification
	RecipientId string          `json:"recipientId"` // 接收用户
	Uuid        string          `json:"uuid"`        // 事件来源实体的 UUID
	Payload     json.RawMessage `json:"payload"`     // 推送给前端的 JSON 内容
}

// EventQueue 事件队列接口
type EventQueue interface {
	// Publish 发布一条下行事件
	Publish(ctx context.Context, event *PushEvent) error
	// Start 启动消费循环，将事件送达在线用户
	Start()
	// Close 关闭队列资源
	Close()
}

// PushSender 推送发送接口
// 用于解耦 MQ 层和 Gateway 层的依赖关系
type PushSender interface {
	// SendToUser 向指定用户推送，不在线时静默丢弃
	SendToUser(userId string, payload []byte, uuid string) error
}

var pushSender PushSender

// SetPushSender 注入 PushSender 实现
func SetPushSender(sender PushSender) {
	pushSender = sender
}

// GetPushSender 获取 PushSender 实现
func GetPushSender() PushSender {
	return pushSender
}
