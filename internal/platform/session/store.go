// Package session 提供以浏览器会话 ID 为键的短期服务端存储，
// 目前只用于保存 OAuth state。
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store 服务端会话存储；Take 读取后立即删除，保证一次性使用
type Store interface {
	Set(ctx context.Context, sid, key, value string, ttl time.Duration) error
	Take(ctx context.Context, sid, key string) (string, bool, error)
}

// NewStore Redis 可用时使用 Redis，否则退化为进程内存储
func NewStore(client *redis.Client, prefix string) Store {
	if client == nil {
		return NewMemoryStore()
	}
	if prefix == "" {
		prefix = "chatcode"
	}
	return &redisStore{client: client, prefix: prefix}
}

type redisStore struct {
	client *redis.Client
	prefix string
}

func (s *redisStore) key(sid, key string) string {
	return s.prefix + ":session:" + sid + ":" + key
}

func (s *redisStore) Set(ctx context.Context, sid, key, value string, ttl time.Duration) error {
	return s.client.Set(ctx, s.key(sid, key), value, ttl).Err()
}

func (s *redisStore) Take(ctx context.Context, sid, key string) (string, bool, error) {
	val, err := s.client.GetDel(ctx, s.key(sid, key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

// sweepInterval 内存存储清理过期条目的最小间隔
const sweepInterval = time.Minute

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

// MemoryStore 单实例部署使用的内存实现
type MemoryStore struct {
	entries sync.Map
	now     func() time.Time

	mu        sync.Mutex
	nextSweep time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{now: time.Now}
}

func (s *MemoryStore) Set(_ context.Context, sid, key, value string, ttl time.Duration) error {
	now := s.now()
	s.entries.Store(sid+":"+key, memoryEntry{value: value, expiresAt: now.Add(ttl)})
	if s.sweepDue(now) {
		s.sweep(now)
	}
	return nil
}

func (s *MemoryStore) Take(_ context.Context, sid, key string) (string, bool, error) {
	raw, ok := s.entries.LoadAndDelete(sid + ":" + key)
	if !ok {
		return "", false, nil
	}
	entry := raw.(memoryEntry)
	if !s.now().Before(entry.expiresAt) {
		return "", false, nil
	}
	return entry.value, true, nil
}

// sweepDue 距上次清理超过 sweepInterval 时返回 true 并预约下一次
func (s *MemoryStore) sweepDue(now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if now.Before(s.nextSweep) {
		return false
	}
	s.nextSweep = now.Add(sweepInterval)
	return true
}

// sweep 清理已过期的条目
func (s *MemoryStore) sweep(now time.Time) {
	s.entries.Range(func(k, v any) bool {
		if entry, ok := v.(memoryEntry); ok && !now.Before(entry.expiresAt) {
			s.entries.Delete(k)
		}
		return true
	})
}
