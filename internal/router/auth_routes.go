package router

import (
	authhandler "github.com/Yersat/chatcode/internal/modules/auth/handler"

	"github.com/gin-gonic/gin"
)

func registerAuthRoutes(api *gin.RouterGroup, authLimiter gin.HandlerFunc, h *authhandler.Handler) {
	api.POST("/login", authLimiter, h.Login)
	api.POST("/register", authLimiter, h.Register)
	api.POST("/logout", h.Logout)
	api.GET("/auth/providers", h.GetProviders)
}
