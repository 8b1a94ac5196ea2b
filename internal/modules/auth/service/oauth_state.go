package service

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"time"

	"github.com/Yersat/chatcode/internal/consts"
	"github.com/Yersat/chatcode/internal/platform/session"

	"go.uber.org/zap"
)

const stateNonceBytes = 32

var errMissingBrowserSession = errors.New("missing browser session id")

// StateGuard 为每次第三方登录生成一次性 state，并在回调时校验
type StateGuard struct {
	store session.Store
	ttl   time.Duration
}

func NewStateGuard(store session.Store, ttl time.Duration) *StateGuard {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &StateGuard{store: store, ttl: ttl}
}

// Begin 生成新的 state 并写入浏览器会话，覆盖之前未完成的尝试
func (g *StateGuard) Begin(ctx context.Context, sid string) (string, error) {
	if sid == "" {
		return "", errMissingBrowserSession
	}
	buf := make([]byte, stateNonceBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	state := base64.RawURLEncoding.EncodeToString(buf)
	if err := g.store.Set(ctx, sid, consts.SessionKeyOAuthState, state, g.ttl); err != nil {
		return "", err
	}
	return state, nil
}

// Verify 取出并删除保存的 state 后做常量时间比较；不一致时 state 同样作废
func (g *StateGuard) Verify(ctx context.Context, sid, received string) bool {
	if sid == "" {
		return false
	}
	stored, ok, err := g.store.Take(ctx, sid, consts.SessionKeyOAuthState)
	if err != nil {
		zap.L().Warn("读取 OAuth state 失败", zap.Error(err))
		return false
	}
	if !ok || stored == "" || received == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(received)) == 1
}
