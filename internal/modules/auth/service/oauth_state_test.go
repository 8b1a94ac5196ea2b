package service

import (
	"context"
	"encoding/base64"
	"testing"
	"time"

	"github.com/Yersat/chatcode/internal/consts"
	"github.com/Yersat/chatcode/internal/platform/session"
)

// 测试内容：验证 state 为 32 字节随机数的 base64url 编码且每次不同。
func TestStateGuard_BeginGeneratesNonce(t *testing.T) {
	guard := NewStateGuard(session.NewMemoryStore(), time.Minute)
	ctx := context.Background()

	a, err := guard.Begin(ctx, "sid")
	if err != nil {
		t.Fatalf("Begin: %v", err)
	}
	b, _ := guard.Begin(ctx, "sid")
	if a == b {
		t.Fatalf("期望两次生成的 state 不同")
	}
	raw, err := base64.RawURLEncoding.DecodeString(a)
	if err != nil || len(raw) != 32 {
		t.Fatalf("期望 32 字节 base64url，实际为 %q (%d bytes, err=%v)", a, len(raw), err)
	}
}

// 测试内容：验证 state 只能使用一次，且新的 Begin 会覆盖旧值。
func TestStateGuard_VerifyIsSingleUse(t *testing.T) {
	guard := NewStateGuard(session.NewMemoryStore(), time.Minute)
	ctx := context.Background()

	old, _ := guard.Begin(ctx, "sid")
	current, _ := guard.Begin(ctx, "sid")

	if guard.Verify(ctx, "sid", old) {
		t.Fatalf("期望被覆盖的 state 无效")
	}

	current, _ = guard.Begin(ctx, "sid")
	if !guard.Verify(ctx, "sid", current) {
		t.Fatalf("期望正确的 state 校验通过")
	}
	if guard.Verify(ctx, "sid", current) {
		t.Fatalf("期望 state 第二次使用失败")
	}
}

// 测试内容：验证不一致的 state 同样会作废已保存的值。
func TestStateGuard_MismatchConsumesStoredState(t *testing.T) {
	store := session.NewMemoryStore()
	guard := NewStateGuard(store, time.Minute)
	ctx := context.Background()

	if err := store.Set(ctx, "sid", consts.SessionKeyOAuthState, "abc", time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if guard.Verify(ctx, "sid", "xyz") {
		t.Fatalf("期望不一致的 state 校验失败")
	}
	if guard.Verify(ctx, "sid", "abc") {
		t.Fatalf("期望校验失败后原 state 已作废")
	}
}

// 测试内容：验证缺少会话或缺少 state 时校验失败。
func TestStateGuard_MissingValues(t *testing.T) {
	guard := NewStateGuard(session.NewMemoryStore(), time.Minute)
	ctx := context.Background()

	if guard.Verify(ctx, "sid", "anything") {
		t.Fatalf("期望未保存 state 时校验失败")
	}
	state, _ := guard.Begin(ctx, "sid")
	if guard.Verify(ctx, "", state) {
		t.Fatalf("期望缺少会话 ID 时校验失败")
	}
	if _, err := guard.Begin(ctx, ""); err == nil {
		t.Fatalf("期望缺少会话 ID 时 Begin 失败")
	}

	state, _ = guard.Begin(ctx, "sid")
	if guard.Verify(ctx, "sid", "") {
		t.Fatalf("期望回调未携带 state 时校验失败")
	}
	_ = state
}
