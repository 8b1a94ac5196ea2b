package handler

import (
	"net/http"
	"time"

	"github.com/Yersat/chatcode/internal/config"
	"github.com/Yersat/chatcode/internal/consts"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// browserSessionMaxAge 浏览器会话 cookie 只用于 OAuth 往返
const browserSessionMaxAge = 24 * time.Hour

func setSessionCookie(c *gin.Context, token string, maxAge time.Duration) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(consts.SessionCookieName, token, int(maxAge.Seconds()), "/", "", config.Get().Session.CookieSecure, true)
}

func clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(consts.SessionCookieName, "", -1, "/", "", config.Get().Session.CookieSecure, true)
}

// ensureBrowserSession 返回浏览器会话 ID，不存在时生成新的 UUID 并写入 cookie
func ensureBrowserSession(c *gin.Context) string {
	if sid, err := c.Cookie(consts.BrowserSessionCookieName); err == nil {
		if _, parseErr := uuid.Parse(sid); parseErr == nil {
			return sid
		}
	}
	sid := uuid.NewString()
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(consts.BrowserSessionCookieName, sid, int(browserSessionMaxAge.Seconds()), "/", "", config.Get().Session.CookieSecure, true)
	return sid
}

func browserSessionID(c *gin.Context) string {
	sid, err := c.Cookie(consts.BrowserSessionCookieName)
	if err != nil {
		return ""
	}
	return sid
}
