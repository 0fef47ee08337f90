package mq

import (
	"context"
	"encoding/json"
	"fmt"

	"elearn_comm_server/pkg/constants"
	"elearn_comm_server/pkg/errorx"

	"go.uber.org/zap"
)

// ChannelQueue 进程内事件队列，单机部署的默认实现
type ChannelQueue struct {
	events chan []byte
	done   chan struct{}
}

// NewChannelQueue 创建进程内事件队列
func NewChannelQueue() *ChannelQueue {
	return &ChannelQueue{
		events: make(chan []byte, constants.CHANNEL_SIZE),
		done:   make(chan struct{}),
	}
}

// Publish 发布一条下行事件
// 队列满说明消费跟不上，返回繁忙错误由调用方决定是否丢弃
func (q *ChannelQueue) Publish(ctx context.Context, event *PushEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errorx.Wrap(err, errorx.CodeServerBusy, "事件序列化失败")
	}
	select {
	case q.events <- data:
		return nil
	default:
		return errorx.New(errorx.CodeServerBusy, "事件队列已满")
	}
}

// Start 启动消费循环
func (q *ChannelQueue) Start() {
	defer func() {
		if r := recover(); r != nil {
			zap.L().Error(fmt.Sprintf("channel queue panic: %v", r))
		}
	}()

	for {
		select {
		case data := <-q.events:
			deliver(data)
		case <-q.done:
			return
		}
	}
}

// Close 停止消费循环
func (q *ChannelQueue) Close() {
	close(q.done)
}

// deliver 将一条事件送达在线用户
func deliver(data []byte) {
	var event PushEvent
	if err := json.Unmarshal(data, &event); err != nil {
		zap.L().Error("事件反序列化失败", zap.Error(err))
		return
	}
	sender := GetPushSender()
	if sender == nil {
		zap.L().Error("PushSender not initialized")
		return
	}
	if err := sender.SendToUser(event.RecipientId, event.Payload, event.Uuid); err != nil {
		zap.L().Error("推送事件失败", zap.String("recipientId", event.RecipientId), zap.Error(err))
	}
}

var _ EventQueue = (*ChannelQueue)(nil)
