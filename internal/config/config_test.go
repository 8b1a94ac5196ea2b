package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// 测试内容：验证初始化配置会设置默认值并记录配置目录。
func TestInitConfig_SetsDefaults(t *testing.T) {
	dir := t.TempDir()

	t.Setenv("CHATCODE_SERVER_MODE", "debug")
	t.Setenv("CHATCODE_SESSION_SECRET", "")
	t.Setenv("APP_SECRET", "")

	if err := InitConfig(dir); err != nil {
		t.Fatalf("InitConfig: %v", err)
	}

	cfg := Get()
	if cfg.Server.Port != "8000" {
		t.Fatalf("期望默认端口 8000，实际为 %q", cfg.Server.Port)
	}
	if cfg.Session.Secret != DefaultSessionSecret {
		t.Fatalf("期望开发模式使用默认会话密钥，实际为 %q", cfg.Session.Secret)
	}
	if cfg.Session.MaxAge() != 30*24*time.Hour {
		t.Fatalf("期望会话有效期 30 天，实际为 %v", cfg.Session.MaxAge())
	}
	if cfg.Link.BaseURL != "https://wa.me" {
		t.Fatalf("期望默认链接域名 https://wa.me，实际为 %q", cfg.Link.BaseURL)
	}
	if GetConfigDir() != dir {
		t.Fatalf("期望 config dir %q，实际为 %q", dir, GetConfigDir())
	}
}

// 测试内容：验证 CHATCODE_ 前缀环境变量可以覆盖嵌套配置。
func TestInitConfig_EnvOverride(t *testing.T) {
	t.Setenv("CHATCODE_SERVER_MODE", "debug")
	t.Setenv("CHATCODE_SERVER_PORT", "9999")
	t.Setenv("CHATCODE_REDIS_PREFIX", "cc_test")
	t.Setenv("CHATCODE_SESSION_MAX_AGE_DAYS", "7")

	if err := InitConfig(t.TempDir()); err != nil {
		t.Fatalf("InitConfig: %v", err)
	}

	cfg := Get()
	if cfg.Server.Port != "9999" {
		t.Fatalf("期望端口 9999，实际为 %q", cfg.Server.Port)
	}
	if cfg.Redis.Prefix != "cc_test" {
		t.Fatalf("期望 redis 前缀 cc_test，实际为 %q", cfg.Redis.Prefix)
	}
	if cfg.Session.MaxAge() != 7*24*time.Hour {
		t.Fatalf("期望会话有效期 7 天，实际为 %v", cfg.Session.MaxAge())
	}
}

// 测试内容：验证旧变量名 APP_SECRET 与 GOOGLE_CLIENT_ID 仍然生效。
func TestInitConfig_LegacyEnvNames(t *testing.T) {
	t.Setenv("CHATCODE_SERVER_MODE", "debug")
	t.Setenv("CHATCODE_SESSION_SECRET", "")
	t.Setenv("APP_SECRET", "legacy-secret")
	t.Setenv("GOOGLE_CLIENT_ID", "gid")
	t.Setenv("GOOGLE_CLIENT_SECRET", "gsecret")

	if err := InitConfig(t.TempDir()); err != nil {
		t.Fatalf("InitConfig: %v", err)
	}

	cfg := Get()
	if cfg.Session.Secret != "legacy-secret" {
		t.Fatalf("期望读取 APP_SECRET，实际为 %q", cfg.Session.Secret)
	}
	if !cfg.OAuth.Google.Enabled() {
		t.Fatalf("期望 google provider 已启用")
	}
	if cfg.OAuth.GitHub.Enabled() {
		t.Fatalf("期望 github provider 未启用")
	}
}

// 测试内容：验证 release 模式下默认会话密钥会被拒绝。
func TestInitConfig_ReleaseRejectsDefaultSecret(t *testing.T) {
	t.Setenv("CHATCODE_SERVER_MODE", "release")
	t.Setenv("CHATCODE_SESSION_SECRET", DefaultSessionSecret)

	err := InitConfig(t.TempDir())
	if !errors.Is(err, ErrInsecureSessionSecret) {
		t.Fatalf("期望 ErrInsecureSessionSecret，实际为 %v", err)
	}
}

// 测试内容：验证配置文件中的值会被读取。
func TestInitConfig_ReadsYAMLFile(t *testing.T) {
	dir := t.TempDir()
	content := "server:\n  port: \"7000\"\nlink:\n  promo_text: \"promo from file\"\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0644); err != nil {
		t.Fatalf("写入配置文件失败: %v", err)
	}
	t.Setenv("CHATCODE_SERVER_MODE", "debug")

	if err := InitConfig(dir); err != nil {
		t.Fatalf("InitConfig: %v", err)
	}

	cfg := Get()
	if cfg.Server.Port != "7000" {
		t.Fatalf("期望端口 7000，实际为 %q", cfg.Server.Port)
	}
	if cfg.Link.PromoText != "promo from file" {
		t.Fatalf("期望推广文案来自配置文件，实际为 %q", cfg.Link.PromoText)
	}
}
