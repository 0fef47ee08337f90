package constants

import "time"

const (
	CHANNEL_SIZE          = 100                   // websocket/事件通道大小
	REDIS_TIMEOUT         = 1                     // redis 缓存过期时间 (分钟)
	MESSAGE_PAGE_SIZE     = 50                    // 消息列表默认分页大小
	NOTIFY_MAX_RETRY      = 3                     // 通知写入最大重试次数
	NOTIFY_RETRY_INTERVAL = 50 * time.Millisecond // 通知重试间隔基数
	DEFAULT_SESSION_TTL   = 24 * time.Hour        // 未指定 TTL 时的会话有效期
	SESSION_SWEEP_DEFAULT = 10 * time.Minute      // 过期会话清理默认周期
)
