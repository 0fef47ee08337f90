package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"elearn_comm_server/internal/config"
	dao "elearn_comm_server/internal/dao/mysql"
	myredis "elearn_comm_server/internal/dao/redis"
	"elearn_comm_server/internal/gateway/websocket"
	"elearn_comm_server/internal/handler"
	"elearn_comm_server/internal/https_server"
	"elearn_comm_server/internal/infrastructure/logger"
	"elearn_comm_server/internal/infrastructure/mq"
	"elearn_comm_server/internal/infrastructure/userapi"
	"elearn_comm_server/internal/service"
	"elearn_comm_server/pkg/util/jwt"
	"elearn_comm_server/pkg/util/snowflake"

	"go.uber.org/zap"
)

func main() {
	// 1. 加载配置
	conf := config.GetConfig()

	// 2. 初始化日志
	if err := logger.Init(&conf.LogConfig, "dev"); err != nil {
		log.Fatalf("init logger failed: %v", err)
	}
	zap.L().Info("日志初始化成功")

	// 3. 初始化数据库
	repos := dao.Init()
	zap.L().Info("数据库初始化成功")

	// 4. 初始化 Redis
	myredis.Init()
	zap.L().Info("Redis 初始化成功")

	// 5. 初始化 JWT 与雪花算法
	jwt.Init(conf.JWTConfig.Secret, conf.JWTConfig.AccessTokenExpiry, conf.JWTConfig.RefreshTokenExpiry)
	snowflake.Init(conf.SnowflakeConfig.MachineID)

	// 6. 初始化事件队列
	queue := mq.Init()
	if conf.KafkaConfig.MessageMode == "kafka" {
		if kq, ok := queue.(*mq.KafkaQueue); ok {
			if err := kq.CreateTopic(); err != nil {
				zap.L().Fatal("Kafka Topic 创建失败", zap.Error(err))
			}
		}
	}
	zap.L().Info("事件队列初始化成功", zap.String("mode", conf.KafkaConfig.MessageMode))

	// 7. 初始化 Service 层 (依赖注入)
	users := userapi.NewHTTPResolver()
	service.InitServices(repos, myredis.GetCacheService(), users, queue)
	zap.L().Info("Service 层初始化成功")

	// 8. 初始化 WebSocket 推送网关
	// 注入 PushSender 接口实现 (依赖倒置: mq → websocket)
	websocket.Init()
	hub := websocket.GetHub()
	mq.SetPushSender(hub)
	go hub.Start()
	go queue.Start()
	zap.L().Info("推送网关初始化成功")

	// 9. 过期会话清理
	sweepInterval := conf.SessionConfig.SweepIntervalMin
	if sweepInterval > 0 {
		go func() {
			ticker := time.NewTicker(time.Duration(sweepInterval) * time.Minute)
			defer ticker.Stop()
			for range ticker.C {
				n, err := service.Svc.Session.SweepExpired()
				if err != nil {
					zap.L().Error("过期会话清理失败", zap.Error(err))
					continue
				}
				if n > 0 {
					zap.L().Info("过期会话清理完成", zap.Int64("count", n))
				}
			}
		}()
	}

	// 10. 初始化参数校验翻译器
	if err := handler.InitTrans("zh"); err != nil {
		zap.L().Fatal("翻译器初始化失败", zap.Error(err))
	}

	// 11. 初始化 HTTP 服务器并启动
	handlers := handler.NewHandlers(service.Svc)
	engine := https_server.Init(handlers)

	host := conf.MainConfig.Host
	port := conf.MainConfig.Port
	go func() {
		if err := engine.Run(fmt.Sprintf("%s:%d", host, port)); err != nil {
			zap.L().Fatal("server running fault", zap.Error(err))
		}
	}()
	zap.L().Info("服务器启动成功", zap.String("host", host), zap.Int("port", port))

	// 设置信号监听
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zap.L().Info("关闭服务器...")
	queue.Close()
	hub.Close()
	zap.L().Info("服务器已关闭")
}
