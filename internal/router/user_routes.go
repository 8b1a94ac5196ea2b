package router

import (
	qrhandler "github.com/Yersat/chatcode/internal/modules/qrcode/handler"
	userhandler "github.com/Yersat/chatcode/internal/modules/user/handler"

	"github.com/gin-gonic/gin"
)

func registerUserRoutes(api *gin.RouterGroup, sessionAuth gin.HandlerFunc, h *userhandler.Handler, qr *qrhandler.Handler) {
	userGroup := api.Group("/user")
	userGroup.Use(sessionAuth)

	userGroup.GET("/profile", h.GetProfile)
	userGroup.PATCH("/settings", h.UpdateSettings)
	userGroup.GET("/link", qr.GetMyLink)
}
