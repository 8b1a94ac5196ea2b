package middleware

import (
	"net/http"

	"github.com/Yersat/chatcode/internal/consts"
	"github.com/Yersat/chatcode/internal/model"

	"github.com/gin-gonic/gin"
)

// SessionResolver 根据会话 cookie 加载当前用户
type SessionResolver interface {
	ResolveSession(token string) (*model.User, bool)
}

// SessionAuth 校验身份 cookie，通过后在上下文写入 id、username、admin
func SessionAuth(resolver SessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(consts.SessionCookieName)
		if err != nil || token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}

		// 签名无效、过期、用户不存在或已停用统一按未登录处理
		user, ok := resolver.ResolveSession(token)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Session expired, please log in again"})
			c.Abort()
			return
		}

		c.Set("id", user.ID)
		c.Set("username", user.Username)
		c.Set("admin", user.IsAdmin)
		c.Next()
	}
}

func AdminCheck() gin.HandlerFunc {
	return func(c *gin.Context) {
		value, exist := c.Get("admin")
		isAdmin, ok := value.(bool)
		if !exist || !ok || !isAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			c.Abort()
			return
		}
		c.Next()
	}
}
