// Package redis 提供 Redis 缓存操作的封装
// 本文件仅包含 Redis 连接初始化逻辑
package redis

import (
	"strconv"

	"elearn_comm_server/internal/config"

	"github.com/redis/go-redis/v9"
)

var redisClient *redis.Client

var cacheService AsyncCacheService

// Init 初始化 Redis 连接
func Init() {
	conf := config.GetConfig()
	host := conf.RedisConfig.Host
	port := conf.RedisConfig.Port
	password := conf.RedisConfig.Password
	db := conf.RedisConfig.Db

	addr := host + ":" + strconv.Itoa(port)

	redisClient = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
		// 连接池配置，空闲连接数与 Worker 数量匹配
		PoolSize:     50,
		MinIdleConns: 15,
	})

	cacheService = NewRedisCache(redisClient, 15, 3000)
}

// GetCacheService 获取缓存服务实例，供 Service 层依赖注入使用
func GetCacheService() AsyncCacheService {
	return cacheService
}
