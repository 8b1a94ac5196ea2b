package router

import (
	"github.com/Yersat/chatcode/internal/consts"
	"github.com/Yersat/chatcode/internal/middleware"
	"github.com/Yersat/chatcode/internal/modules"
	"github.com/Yersat/chatcode/internal/platform/service"

	"github.com/gin-gonic/gin"
)

type Router struct {
	modules *modules.AppModules
	service *service.AppService
}

func NewRouter(appModules *modules.AppModules, appService *service.AppService) *Router {
	return &Router{
		modules: appModules,
		service: appService,
	}
}

func (rt *Router) Init(r *gin.Engine) {
	// 注册全局安全标头中间件
	r.Use(middleware.SecurityHeaders())

	// 认证限流：在多个路由中复用同一个实例
	authLimiter := middleware.RateLimitMiddleware(rt.service, consts.ConfigRateLimitAuthRPS, consts.ConfigRateLimitAuthBurst)
	sessionAuth := middleware.SessionAuth(rt.modules.Auth.Service)

	registerPageRoutes(r, authLimiter, rt.modules)

	api := r.Group("/api")
	// 应用请求体大小限制中间件
	api.Use(middleware.BodyLimitMiddleware(rt.service))

	registerPublicRoutes(api, authLimiter, rt.modules)
	registerAuthRoutes(api, authLimiter, rt.modules.Auth.Handler)
	registerUserRoutes(api, sessionAuth, rt.modules.User.Handler, rt.modules.QRCode.Handler)
	registerAdminRoutes(api, sessionAuth, rt.modules)
}
