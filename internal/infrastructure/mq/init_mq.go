package mq

import (
	myconfig "elearn_comm_server/internal/config"
)

var eventQueue EventQueue

// Init 根据配置的 messageMode 创建事件队列
func Init() EventQueue {
	conf := myconfig.GetConfig()
	if conf.KafkaConfig.MessageMode == "kafka" {
		eventQueue = NewKafkaQueue()
	} else {
		eventQueue = NewChannelQueue()
	}
	return eventQueue
}

// GetEventQueue 获取全局事件队列实例
func GetEventQueue() EventQueue {
	return eventQueue
}
