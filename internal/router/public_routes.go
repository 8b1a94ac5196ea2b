package router

import (
	"github.com/Yersat/chatcode/internal/modules"

	"github.com/gin-gonic/gin"
)

// registerPageRoutes 非 /api 前缀的路由：健康检查、OAuth 往返、二维码图片
func registerPageRoutes(r *gin.Engine, authLimiter gin.HandlerFunc, m *modules.AppModules) {
	r.GET("/health", m.System.Handler.Health)
	r.GET("/logout", m.Auth.Handler.LogoutRedirect)
	r.GET("/auth/:provider", authLimiter, m.Auth.Handler.StartSocialLogin)
	r.GET("/auth/:provider/callback", authLimiter, m.Auth.Handler.SocialCallback)
	r.GET("/qr.png", m.QRCode.Handler.GetQRCode)
}

func registerPublicRoutes(api *gin.RouterGroup, authLimiter gin.HandlerFunc, m *modules.AppModules) {
	api.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
	api.GET("/webinfo", m.Settings.Handler.GetWebInfo)
	api.GET("/u/:username", m.QRCode.Handler.GetPublicPage)

	api.GET("/init", m.System.Handler.GetInitState)
	api.POST("/init", authLimiter, m.System.Handler.Init)
}
