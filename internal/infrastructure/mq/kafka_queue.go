package mq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	myconfig "elearn_comm_server/internal/config"
	"elearn_comm_server/pkg/errorx"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// KafkaQueue Kafka 事件队列，多实例部署时使用
type KafkaQueue struct {
	writer *kafka.Writer
	reader *kafka.Reader
	done   chan struct{}
}

// NewKafkaQueue 根据配置创建 Kafka 事件队列
func NewKafkaQueue() *KafkaQueue {
	kafkaConfig := myconfig.GetConfig().KafkaConfig
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(kafkaConfig.HostPort),
		Topic:                  kafkaConfig.EventTopic,
		Balancer:               &kafka.Hash{},
		WriteTimeout:           kafkaConfig.Timeout * time.Second,
		RequiredAcks:           kafka.RequireNone,
		AllowAutoTopicCreation: false,
	}
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        []string{kafkaConfig.HostPort},
		Topic:          kafkaConfig.EventTopic,
		CommitInterval: kafkaConfig.Timeout * time.Second,
		GroupID:        "elearn_comm",
		StartOffset:    kafka.LastOffset,
	})
	return &KafkaQueue{
		writer: writer,
		reader: reader,
		done:   make(chan struct{}),
	}
}

// CreateTopic 创建事件主题，已存在时 Kafka 侧幂等
func (q *KafkaQueue) CreateTopic() error {
	kafkaConfig := myconfig.GetConfig().KafkaConfig
	conn, err := kafka.Dial("tcp", kafkaConfig.HostPort)
	if err != nil {
		return errorx.Wrap(err, errorx.CodeServerBusy, "kafka dial failed")
	}
	defer conn.Close()

	topicConfigs := []kafka.TopicConfig{
		{
			Topic:             kafkaConfig.EventTopic,
			NumPartitions:     kafkaConfig.Partition,
			ReplicationFactor: 1,
		},
	}
	if err := conn.CreateTopics(topicConfigs...); err != nil {
		return errorx.Wrap(err, errorx.CodeServerBusy, "kafka create topic failed")
	}
	return nil
}

// Publish 发布一条下行事件
// 以接收者作为 key，保证同一用户的事件有序
func (q *KafkaQueue) Publish(ctx context.Context, event *PushEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errorx.Wrap(err, errorx.CodeServerBusy, "事件序列化失败")
	}
	if err := q.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.RecipientId),
		Value: data,
	}); err != nil {
		return errorx.Wrap(err, errorx.CodeServerBusy, "kafka write failed")
	}
	return nil
}

// Start 启动消费循环
func (q *KafkaQueue) Start() {
	defer func() {
		if r := recover(); r != nil {
			zap.L().Error(fmt.Sprintf("kafka queue panic: %v", r))
		}
	}()

	ctx := context.Background()
	for {
		select {
		case <-q.done:
			return
		default:
		}
		message, err := q.reader.ReadMessage(ctx)
		if err != nil {
			zap.L().Error(err.Error())
			continue
		}
		zap.L().Debug(fmt.Sprintf("topic=%s, partition=%d, offset=%d, key=%s",
			message.Topic, message.Partition, message.Offset, message.Key))
		deliver(message.Value)
	}
}

// Close 关闭读写端
func (q *KafkaQueue) Close() {
	close(q.done)
	if err := q.writer.Close(); err != nil {
		zap.L().Error(err.Error())
	}
	if err := q.reader.Close(); err != nil {
		zap.L().Error(err.Error())
	}
}

var _ EventQueue = (*KafkaQueue)(nil)
