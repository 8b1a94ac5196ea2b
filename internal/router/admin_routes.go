package router

import (
	"github.com/Yersat/chatcode/internal/middleware"
	"github.com/Yersat/chatcode/internal/modules"

	"github.com/gin-gonic/gin"
)

func registerAdminRoutes(api *gin.RouterGroup, sessionAuth gin.HandlerFunc, m *modules.AppModules) {
	adminGroup := api.Group("/admin")
	adminGroup.Use(sessionAuth)
	adminGroup.Use(middleware.AdminCheck())

	adminGroup.GET("/stats", m.System.Handler.GetServerStats)
	adminGroup.GET("/system", m.System.Handler.GetSystemStatus)

	adminGroup.GET("/settings", m.Settings.Handler.GetSettings)
	adminGroup.PATCH("/settings", m.Settings.Handler.UpdateSettings)

	adminGroup.GET("/users", m.User.Handler.GetUserList)
	adminGroup.GET("/users/:id", m.User.Handler.GetUserDetail)
	adminGroup.POST("/users", m.User.Handler.CreateUser)
	adminGroup.PATCH("/users/:id", m.User.Handler.UpdateUser)
	adminGroup.DELETE("/users/:id", m.User.Handler.DeleteUser)
}
