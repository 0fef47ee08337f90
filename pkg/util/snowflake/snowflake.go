package snowflake

import (
	"sync"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/zap"
)

var (
	node     *snowflake.Node
	nodeOnce sync.Once
	machine  int64 = 1
)

// Init 初始化雪花算法节点
// machineID 取值范围 0-1023，分布式部署时每台机器需唯一
// 应在程序启动时调用一次
func Init(machineID int64) {
	machine = machineID
	nodeOnce.Do(func() {
		if machine < 0 || machine > 1023 {
			machine = 1
			zap.L().Warn("Invalid MachineID in config, using default value 1")
		}
		var err error
		node, err = snowflake.NewNode(machine)
		if err != nil {
			zap.L().Fatal("Failed to initialize snowflake node", zap.Error(err))
		}
		zap.L().Info("Snowflake node initialized", zap.Int64("machineID", machine))
	})
}

// GenerateID 生成雪花 ID (int64)
// 同一节点内单调递增，用作消息主键兼追加次序
func GenerateID() int64 {
	if node == nil {
		Init(machine)
	}
	return node.Generate().Int64()
}

// GenerateIDString 生成雪花 ID (string)
// 用于 JSON 序列化，避免 JavaScript 精度丢失
func GenerateIDString() string {
	if node == nil {
		Init(machine)
	}
	return node.Generate().String()
}
