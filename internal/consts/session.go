package consts

import "time"

const (
	// SessionCookieName 身份会话 cookie
	SessionCookieName = "session"

	// BrowserSessionCookieName 服务端会话 cookie，仅用于 OAuth 往返
	BrowserSessionCookieName = "chatcode_sid"

	// SessionKeyOAuthState 服务端会话中保存 OAuth state 的保留键
	SessionKeyOAuthState = "oauth_state"

	// SessionTokenIssuer 会话令牌签发者
	SessionTokenIssuer = "chatcode"

	DefaultSessionMaxAge = 30 * 24 * time.Hour
)

const (
	LoginPath     = "/login"
	DashboardPath = "/dashboard"

	// SocialLoginFailedCode 社交登录失败时附加到登录页的错误标识
	SocialLoginFailedCode = "social_login_failed"
)
