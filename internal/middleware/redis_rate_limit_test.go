package middleware

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

// 测试内容：验证 burst 非正数时 Redis 限流直接放行且不访问 Redis。
func TestAllowByRedisRateLimit_DisabledReturnsOK(t *testing.T) {
	ok, err := allowByRedisRateLimit(context.Background(), nil, "rps", "1.2.3.4", 1, 0)
	if err != nil || !ok {
		t.Fatalf("期望直接放行，实际为 ok=%v err=%v", ok, err)
	}
}

// 测试内容：验证 Redis 不可用时返回错误以便回退内存限流。
func TestAllowByRedisRateLimit_UnavailableRedisReturnsError(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
	})
	defer func() { _ = client.Close() }()

	ok, err := allowByRedisRateLimit(context.Background(), client, "rps", "1.2.3.4", 1, 1)
	if err == nil || ok {
		t.Fatalf("期望 redis 错误，实际为 ok=%v err=%v", ok, err)
	}
}
