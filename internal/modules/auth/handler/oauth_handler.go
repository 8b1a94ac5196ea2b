package handler

import (
	"net/http"
	"net/url"

	"github.com/Yersat/chatcode/internal/consts"
	moduledto "github.com/Yersat/chatcode/internal/modules/auth/dto"
	authservice "github.com/Yersat/chatcode/internal/modules/auth/service"
	"github.com/Yersat/chatcode/internal/modules/common/httpx"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// StartSocialLogin 生成 state 并跳转到 provider 授权页
func (h *Handler) StartSocialLogin(c *gin.Context) {
	sid := ensureBrowserSession(c)

	authURL, err := h.authService.BeginSocialLogin(c.Request.Context(), sid, c.Param("provider"))
	if err != nil {
		httpx.WriteServiceError(c, err, "Unable to start social login")
		return
	}
	c.Redirect(http.StatusFound, authURL)
}

// SocialCallback 处理 provider 回调；任何失败都跳回登录页
func (h *Handler) SocialCallback(c *gin.Context) {
	provider := c.Param("provider")

	var req moduledto.CallbackRequest
	_ = c.ShouldBindQuery(&req)

	user, token, err := h.authService.CompleteSocialLogin(c.Request.Context(), provider, authservice.SocialCallback{
		SID:           browserSessionID(c),
		Code:          req.Code,
		State:         req.State,
		ProviderError: req.Error,
	})
	if err != nil {
		zap.L().Warn("第三方登录失败",
			zap.String("provider", provider),
			zap.String("client_ip", c.ClientIP()),
			zap.Error(err))
		c.Redirect(http.StatusFound, consts.LoginPath+"?error="+url.QueryEscape(consts.SocialLoginFailedCode))
		return
	}

	zap.L().Info("第三方登录成功", zap.String("provider", provider), zap.Uint("user_id", user.ID))
	setSessionCookie(c, token, h.authService.Signer().MaxAge())
	c.Redirect(http.StatusFound, consts.DashboardPath)
}
