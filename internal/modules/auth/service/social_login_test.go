package service

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/Yersat/chatcode/internal/consts"
	"github.com/Yersat/chatcode/internal/model"
	platformservice "github.com/Yersat/chatcode/internal/platform/service"
)

// 测试内容：验证发起第三方登录会保存 state 并返回带 state 的授权地址。
func TestBeginSocialLogin(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()

	raw, err := testService.BeginSocialLogin(ctx, "sid-1", "google")
	if err != nil {
		t.Fatalf("BeginSocialLogin: %v", err)
	}
	u, _ := url.Parse(raw)
	state := u.Query().Get("state")
	if state == "" {
		t.Fatalf("期望授权地址包含 state: %s", raw)
	}
	stored, ok, _ := testSessions.Take(ctx, "sid-1", consts.SessionKeyOAuthState)
	if !ok || stored != state {
		t.Fatalf("期望会话中保存的 state 与授权地址一致")
	}

	_, err = testService.BeginSocialLogin(ctx, "sid-1", "myspace")
	assertServiceErrorCode(t, err, platformservice.ErrorCodeValidation)
}

// 测试内容：验证 state 不一致时中止登录，不访问 provider 也不创建用户。
func TestCompleteSocialLogin_StateMismatchCreatesNothing(t *testing.T) {
	gdb := setupTestDB(t)
	ctx := context.Background()
	if err := testSessions.Set(ctx, "sid-1", consts.SessionKeyOAuthState, "abc", time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}

	_, _, err := testService.CompleteSocialLogin(ctx, "google", SocialCallback{
		SID: "sid-1", Code: "good-code", State: "xyz",
	})
	if !errors.Is(err, ErrStateMismatch) {
		t.Fatalf("期望 ErrStateMismatch，实际为 %v", err)
	}
	if testProvider.exchangeCalls != 0 {
		t.Fatalf("期望不访问 provider，实际调用 %d 次", testProvider.exchangeCalls)
	}
	var count int64
	gdb.Model(&model.User{}).Count(&count)
	if count != 0 {
		t.Fatalf("期望没有创建用户，实际有 %d 个", count)
	}
}

// 测试内容：验证完整的第三方登录流程创建账号并签发会话令牌。
func TestCompleteSocialLogin_Success(t *testing.T) {
	gdb := setupTestDB(t)
	ctx := context.Background()
	testProvider.fields["name"] = "<b>Alice</b>"

	authURL, err := testService.BeginSocialLogin(ctx, "sid-1", "google")
	if err != nil {
		t.Fatalf("BeginSocialLogin: %v", err)
	}
	u, _ := url.Parse(authURL)

	user, token, err := testService.CompleteSocialLogin(ctx, "google", SocialCallback{
		SID: "sid-1", Code: "good-code", State: u.Query().Get("state"),
	})
	if err != nil {
		t.Fatalf("CompleteSocialLogin: %v", err)
	}
	if user.Username != "alice" {
		t.Fatalf("期望用户名 alice，实际为 %q", user.Username)
	}
	if user.FullName != "&lt;b&gt;Alice&lt;/b&gt;" {
		t.Fatalf("期望资料经过转义，实际为 %q", user.FullName)
	}
	if id, ok := testService.Signer().Read(token); !ok || id != user.ID {
		t.Fatalf("期望令牌对应新用户")
	}

	var count int64
	gdb.Model(&model.User{}).Count(&count)
	if count != 1 {
		t.Fatalf("期望创建 1 个用户，实际为 %d", count)
	}

	// state 已被消费，重放失败
	_, _, err = testService.CompleteSocialLogin(ctx, "google", SocialCallback{
		SID: "sid-1", Code: "good-code", State: u.Query().Get("state"),
	})
	if !errors.Is(err, ErrStateMismatch) {
		t.Fatalf("期望重放回调失败，实际为 %v", err)
	}
}

// 测试内容：验证 provider 返回 error 参数、换取失败、未知 provider 均导致失败。
func TestCompleteSocialLogin_Failures(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()

	state, _ := testService.states.Begin(ctx, "sid")
	_, _, err := testService.CompleteSocialLogin(ctx, "google", SocialCallback{
		SID: "sid", State: state, ProviderError: "access_denied",
	})
	if !errors.Is(err, ErrProviderDenied) {
		t.Fatalf("期望 ErrProviderDenied，实际为 %v", err)
	}

	state, _ = testService.states.Begin(ctx, "sid")
	if _, _, err = testService.CompleteSocialLogin(ctx, "google", SocialCallback{
		SID: "sid", State: state, Code: "bad-code",
	}); err == nil {
		t.Fatalf("期望换取 token 失败")
	}

	_, _, err = testService.CompleteSocialLogin(ctx, "github", SocialCallback{SID: "sid"})
	if !IsUnknownProvider(err) {
		t.Fatalf("期望未知 provider 错误，实际为 %v", err)
	}
}

// 测试内容：验证缺少 subject id 的资料导致登录失败。
func TestCompleteSocialLogin_MissingSubject(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	delete(testProvider.fields, "id")

	state, _ := testService.states.Begin(ctx, "sid")
	_, _, err := testService.CompleteSocialLogin(ctx, "google", SocialCallback{
		SID: "sid", State: state, Code: "good-code",
	})
	if !errors.Is(err, ErrMissingSubjectID) {
		t.Fatalf("期望 ErrMissingSubjectID，实际为 %v", err)
	}
}

// 测试内容：验证停用账号无法通过第三方登录。
func TestCompleteSocialLogin_InactiveAccount(t *testing.T) {
	gdb := setupTestDB(t)
	ctx := context.Background()
	provider, subject := "google", "42"
	inactive := model.User{Username: "alice", SocialProvider: &provider, SocialID: &subject, IsActive: true}
	if err := gdb.Create(&inactive).Error; err != nil {
		t.Fatalf("创建用户失败: %v", err)
	}
	if err := gdb.Model(&inactive).Update("is_active", false).Error; err != nil {
		t.Fatalf("停用用户失败: %v", err)
	}

	state, _ := testService.states.Begin(ctx, "sid")
	_, _, err := testService.CompleteSocialLogin(ctx, "google", SocialCallback{
		SID: "sid", State: state, Code: "good-code",
	})
	if !errors.Is(err, ErrInactiveAccount) {
		t.Fatalf("期望 ErrInactiveAccount，实际为 %v", err)
	}

	var after model.User
	if err := gdb.First(&after, inactive.ID).Error; err != nil {
		t.Fatalf("查询用户失败: %v", err)
	}
	if after.LastLogin != nil {
		t.Fatalf("期望被拒绝的登录不更新 last_login，实际为 %v", after.LastLogin)
	}
	if after.FullName != "" || after.Email != "" {
		t.Fatalf("期望被拒绝的登录不更新资料，实际为 %q / %q", after.FullName, after.Email)
	}
}

// 测试内容：验证 provider 标记为已验证的邮箱同样经过转义与长度限制。
func TestCompleteSocialLogin_TrustedEmailSanitized(t *testing.T) {
	gdb := setupTestDB(t)
	ctx := context.Background()
	testProvider.fields["email"] = "bob@example.com"
	testProvider.verifiedEmail = "<bob>@example.com"

	state, _ := testService.states.Begin(ctx, "sid")
	user, _, err := testService.CompleteSocialLogin(ctx, "google", SocialCallback{
		SID: "sid", State: state, Code: "good-code",
	})
	if err != nil {
		t.Fatalf("CompleteSocialLogin: %v", err)
	}
	if user.Email != "&lt;bob&gt;@example.com" {
		t.Fatalf("期望已验证邮箱被转义，实际为 %q", user.Email)
	}

	// 超长的已验证邮箱被丢弃，不参与匹配也不写入
	testProvider.fields["id"] = "43"
	testProvider.verifiedEmail = strings.Repeat("a", 600) + "@example.com"
	state, _ = testService.states.Begin(ctx, "sid")
	user, _, err = testService.CompleteSocialLogin(ctx, "google", SocialCallback{
		SID: "sid", State: state, Code: "good-code",
	})
	if err != nil {
		t.Fatalf("CompleteSocialLogin: %v", err)
	}
	if user.Email != "" {
		t.Fatalf("期望超长邮箱不被保存，实际长度 %d", len(user.Email))
	}
	var count int64
	gdb.Model(&model.User{}).Count(&count)
	if count != 2 {
		t.Fatalf("期望创建 2 个独立账号，实际为 %d", count)
	}
}
