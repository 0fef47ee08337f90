package testutil

import (
	"context"
	"sync"

	"elearn_comm_server/internal/infrastructure/mq"
)

// CapturingQueue 记录所有发布事件的内存队列，不做实际投递
type CapturingQueue struct {
	mu     sync.Mutex
	events []mq.PushEvent
}

func NewCapturingQueue() *CapturingQueue {
	return &CapturingQueue{}
}

func (q *CapturingQueue) Publish(ctx context.Context, event *mq.PushEvent) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.events = append(q.events, *event)
	return nil
}

func (q *CapturingQueue) Start() {}

func (q *CapturingQueue) Close() {}

// Events 返回已发布事件的快照
func (q *CapturingQueue) Events() []mq.PushEvent {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := make([]mq.PushEvent, len(q.events))
	copy(out, q.events)
	return out
}
