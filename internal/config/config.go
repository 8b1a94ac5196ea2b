package config

import (
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// 用于管理应用配置

const DefaultSessionSecret = "dev-secret-change-me"

var (
	// 使用 atomic.Value 存储 *Config，实现无锁读取
	appConfig atomic.Value
	configMu  sync.Mutex // 仅用于写操作互斥
	configDir = "config"
)

var ErrInsecureSessionSecret = errors.New("release mode requires a non-default session secret")

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Session  SessionConfig  `mapstructure:"session"`
	OAuth    OAuthConfig    `mapstructure:"oauth"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Log      LogConfig      `mapstructure:"log"`
	Link     LinkConfig     `mapstructure:"link"`
}

type ServerConfig struct {
	Port           string `mapstructure:"port"`
	Mode           string `mapstructure:"mode"`
	BaseURL        string `mapstructure:"base_url"`        // 对外访问地址，用于拼接 OAuth 回调
	TrustedProxies string `mapstructure:"trusted_proxies"` // 逗号分隔
}

type DatabaseConfig struct {
	Type     string `mapstructure:"type"`     // sqlite, mysql, postgres
	Filename string `mapstructure:"filename"` // for sqlite
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"` // database name
	SSL      bool   `mapstructure:"ssl"`  // enable TLS/SSL
	URL      string `mapstructure:"url"`  // 完整 DSN，优先于上面的字段 (postgres)
}

type SessionConfig struct {
	Secret       string `mapstructure:"secret"`
	MaxAgeDays   int    `mapstructure:"max_age_days"`
	CookieSecure bool   `mapstructure:"cookie_secure"`
}

// MaxAge 会话令牌的最长有效期
func (s SessionConfig) MaxAge() time.Duration {
	days := s.MaxAgeDays
	if days <= 0 {
		days = 30
	}
	return time.Duration(days) * 24 * time.Hour
}

type OAuthConfig struct {
	StateTTLSeconds int                 `mapstructure:"state_ttl_seconds"`
	Google          OAuthProviderConfig `mapstructure:"google"`
	GitHub          OAuthProviderConfig `mapstructure:"github"`
}

// StateTTL OAuth state 在服务端会话中的保留时间
func (o OAuthConfig) StateTTL() time.Duration {
	if o.StateTTLSeconds <= 0 {
		return 10 * time.Minute
	}
	return time.Duration(o.StateTTLSeconds) * time.Second
}

type OAuthProviderConfig struct {
	ClientID     string `mapstructure:"client_id"`
	ClientSecret string `mapstructure:"client_secret"`
	RedirectURL  string `mapstructure:"redirect_url"`
}

// Enabled 只有同时配置了 client id 和 secret 的 provider 才会启用
func (p OAuthProviderConfig) Enabled() bool {
	return strings.TrimSpace(p.ClientID) != "" && strings.TrimSpace(p.ClientSecret) != ""
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Prefix   string `mapstructure:"prefix"`
}

type LogConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"` // json, console
	File       string `mapstructure:"file"`   // 为空时只输出到 stdout
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
}

type LinkConfig struct {
	BaseURL   string `mapstructure:"base_url"`
	PromoText string `mapstructure:"promo_text"`
}

// Get 获取当前配置的快照（高性能无锁）
func Get() Config {
	val := appConfig.Load()
	if val == nil {
		return Config{}
	}
	c, ok := val.(*Config)
	if !ok {
		return Config{}
	}
	return *c
}

func GetConfigDir() string {
	return configDir
}

// InitConfig 加载配置；release 模式下使用默认会话密钥会返回错误
func InitConfig(customConfigDir string) error {
	v, err := initViper(customConfigDir)
	if err != nil {
		return err
	}
	if err := loadAndStore(v); err != nil {
		return err
	}
	if err := enforceSessionSecretSafety(); err != nil {
		return err
	}
	zap.L().Info("✅ 配置加载成功", zap.String("dir", configDir))
	return nil
}

func initViper(customConfigDir string) (*viper.Viper, error) {
	v := viper.New()

	customConfigDir = strings.TrimSpace(customConfigDir)
	if customConfigDir == "" {
		customConfigDir = "config"
	}
	configDir = customConfigDir

	// 设置配置文件路径
	v.AddConfigPath(configDir)
	v.AddConfigPath(".")
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	setDefaults(v)

	// 读取配置文件
	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, err
		}
		zap.L().Warn("⚠️ 未找到配置文件，将仅使用环境变量或默认值")
	}

	// 规则：环境变量以 CHATCODE_ 开头
	// 例如：yaml 中的 server.port 对应环境变量 CHATCODE_SERVER_PORT
	v.SetEnvPrefix("CHATCODE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 兼容旧部署使用的变量名
	legacyEnv := map[string][]string{
		"session.secret":             {"CHATCODE_SESSION_SECRET", "APP_SECRET"},
		"database.url":               {"CHATCODE_DATABASE_URL", "DB_URL"},
		"oauth.google.client_id":     {"CHATCODE_OAUTH_GOOGLE_CLIENT_ID", "GOOGLE_CLIENT_ID"},
		"oauth.google.client_secret": {"CHATCODE_OAUTH_GOOGLE_CLIENT_SECRET", "GOOGLE_CLIENT_SECRET"},
		"oauth.github.client_id":     {"CHATCODE_OAUTH_GITHUB_CLIENT_ID", "GITHUB_CLIENT_ID"},
		"oauth.github.client_secret": {"CHATCODE_OAUTH_GITHUB_CLIENT_SECRET", "GITHUB_CLIENT_SECRET"},
	}
	for key, envs := range legacyEnv {
		if err := v.BindEnv(append([]string{key}, envs...)...); err != nil {
			return nil, err
		}
	}

	return v, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8000")
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.base_url", "http://localhost:8000")
	v.SetDefault("server.trusted_proxies", "")
	v.SetDefault("database.type", "sqlite")
	v.SetDefault("database.filename", "database/chatcode.db")
	v.SetDefault("database.host", "127.0.0.1")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.user", "chatcode")
	v.SetDefault("database.password", "")
	v.SetDefault("database.name", "chatcode")
	v.SetDefault("database.ssl", false)
	v.SetDefault("database.url", "")
	v.SetDefault("session.secret", "")
	v.SetDefault("session.max_age_days", 30)
	v.SetDefault("session.cookie_secure", false)
	v.SetDefault("oauth.state_ttl_seconds", 600)
	v.SetDefault("oauth.google.client_id", "")
	v.SetDefault("oauth.google.client_secret", "")
	v.SetDefault("oauth.google.redirect_url", "")
	v.SetDefault("oauth.github.client_id", "")
	v.SetDefault("oauth.github.client_secret", "")
	v.SetDefault("oauth.github.redirect_url", "")
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.addr", "127.0.0.1:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.prefix", "chatcode")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size_mb", 100)
	v.SetDefault("log.max_backups", 5)
	v.SetDefault("log.max_age_days", 30)
	v.SetDefault("link.base_url", "https://wa.me")
	v.SetDefault("link.promo_text", "Sent via ChatCode QR: chatcode.kz")
}

// loadAndStore 解析并原子更新配置
func loadAndStore(v *viper.Viper) error {
	// 加写锁，防止并发重载时的竞争
	configMu.Lock()
	defer configMu.Unlock()

	var tempConfig Config
	if err := v.Unmarshal(&tempConfig); err != nil {
		return err
	}

	if tempConfig.Server.Mode != "release" && tempConfig.Session.Secret == "" {
		zap.L().Warn("⚠️ [开发模式警告] 未设置会话密钥，将使用默认不安全密钥进行开发")
		tempConfig.Session.Secret = DefaultSessionSecret
	}

	appConfig.Store(&tempConfig)
	return nil
}

func enforceSessionSecretSafety() error {
	curr := Get()
	if curr.Server.Mode != "release" {
		return nil
	}
	if curr.Session.Secret == "" || curr.Session.Secret == DefaultSessionSecret {
		zap.L().Error("❌ [安全严重错误] 生产模式(release)下必须设置安全的会话密钥，请设置 CHATCODE_SESSION_SECRET 或 APP_SECRET")
		return ErrInsecureSessionSecret
	}
	return nil
}

// Set 直接替换当前配置快照，供测试与工具代码使用
func Set(cfg Config) {
	configMu.Lock()
	defer configMu.Unlock()
	c := cfg
	appConfig.Store(&c)
}
