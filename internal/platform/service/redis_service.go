package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/Yersat/chatcode/internal/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

var (
	redisOnce   sync.Once
	redisClient *redis.Client
	redisReady  bool
)

// GetRedisClient 获取 Redis 客户端；当未启用或不可用时返回 nil。
func GetRedisClient() *redis.Client {
	redisOnce.Do(initRedisClient)
	if !redisReady {
		return nil
	}
	return redisClient
}

// RedisKey 基于配置前缀拼接 Redis 键名。
func RedisKey(parts ...string) string {
	prefix := config.Get().Redis.Prefix
	if prefix == "" {
		prefix = "chatcode"
	}
	if len(parts) == 0 {
		return prefix
	}
	return prefix + ":" + strings.Join(parts, ":")
}

func initRedisClient() {
	cfg := config.Get()
	if !cfg.Redis.Enabled {
		redisReady = false
		return
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		redisReady = false
		_ = client.Close()
		zap.L().Warn("⚠️ Redis 不可用，降级为内存模式", zap.Error(err))
		return
	}

	redisClient = client
	redisReady = true
	zap.L().Info("✅ Redis 已连接", zap.String("addr", cfg.Redis.Addr), zap.Int("db", cfg.Redis.DB))
}

// PingRedis 检测 Redis 连通性；未启用时返回 false 且不报错。
func PingRedis(ctx context.Context) (bool, error) {
	client := GetRedisClient()
	if client == nil {
		return false, nil
	}
	if err := client.Ping(ctx).Err(); err != nil {
		return true, err
	}
	return true, nil
}

// CloseRedisClient 关闭 Redis 客户端连接。
func CloseRedisClient() error {
	if redisClient == nil {
		return nil
	}
	err := redisClient.Close()
	if err != nil {
		return fmt.Errorf("close redis failed: %w", err)
	}
	return nil
}
