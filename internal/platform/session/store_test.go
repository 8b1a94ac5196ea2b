package session

import (
	"context"
	"testing"
	"time"
)

// 测试内容：验证 Take 只能成功一次。
func TestMemoryStore_TakeIsOneShot(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	if err := store.Set(ctx, "sid-1", "oauth_state", "abc", time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}

	val, ok, err := store.Take(ctx, "sid-1", "oauth_state")
	if err != nil || !ok || val != "abc" {
		t.Fatalf("期望第一次读取到 abc，实际为 %q ok=%v err=%v", val, ok, err)
	}

	if _, ok, _ := store.Take(ctx, "sid-1", "oauth_state"); ok {
		t.Fatalf("期望第二次读取为空")
	}
}

// 测试内容：验证不同会话之间互相隔离。
func TestMemoryStore_IsolatedBySID(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	_ = store.Set(ctx, "sid-a", "oauth_state", "a", time.Minute)
	if _, ok, _ := store.Take(ctx, "sid-b", "oauth_state"); ok {
		t.Fatalf("期望其他会话读取不到该值")
	}
	if val, ok, _ := store.Take(ctx, "sid-a", "oauth_state"); !ok || val != "a" {
		t.Fatalf("期望原会话仍可读取")
	}
}

// 测试内容：验证过期条目不会被返回。
func TestMemoryStore_Expiry(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	store := NewMemoryStore()
	store.now = func() time.Time { return now }
	ctx := context.Background()

	_ = store.Set(ctx, "sid", "k", "v", time.Minute)
	now = now.Add(2 * time.Minute)

	if _, ok, _ := store.Take(ctx, "sid", "k"); ok {
		t.Fatalf("期望过期条目读取为空")
	}
}

func countEntries(store *MemoryStore) int {
	n := 0
	store.entries.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

// 测试内容：验证过期条目按间隔批量清理，而不是每次写入都遍历。
func TestMemoryStore_SweepsOnInterval(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	store := NewMemoryStore()
	store.now = func() time.Time { return now }
	ctx := context.Background()

	_ = store.Set(ctx, "sid-1", "k", "v", time.Second)
	now = now.Add(2 * time.Second)
	_ = store.Set(ctx, "sid-2", "k", "v", time.Hour)
	if got := countEntries(store); got != 2 {
		t.Fatalf("期望间隔内不清理，实际剩余 %d 个条目", got)
	}

	now = now.Add(sweepInterval)
	_ = store.Set(ctx, "sid-3", "k", "v", time.Hour)
	if got := countEntries(store); got != 2 {
		t.Fatalf("期望过期条目被清理后剩余 2 个，实际为 %d", got)
	}
	if _, ok, _ := store.Take(ctx, "sid-1", "k"); ok {
		t.Fatalf("期望过期条目已被移除")
	}
}

// 测试内容：验证未提供 Redis 客户端时退化为内存实现。
func TestNewStore_FallsBackToMemory(t *testing.T) {
	if _, ok := NewStore(nil, "x").(*MemoryStore); !ok {
		t.Fatalf("期望返回 MemoryStore")
	}
}
