package handler

import (
	"net/http"

	moduledto "github.com/Yersat/chatcode/internal/modules/auth/dto"
	"github.com/Yersat/chatcode/internal/modules/common/httpx"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Login(c *gin.Context) {
	var req moduledto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	user, token, err := h.authService.LoginUser(req.Username, req.Password)
	if err != nil {
		httpx.WriteServiceError(c, err, "Login failed, please try again later")
		return
	}

	setSessionCookie(c, token, h.authService.Signer().MaxAge())
	c.JSON(http.StatusOK, gin.H{
		"message": "Logged in",
		"user":    user,
	})
}

func (h *Handler) Register(c *gin.Context) {
	var req moduledto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username, password and phone are required"})
		return
	}

	user, token, err := h.authService.RegisterUser(req.Username, req.Password, req.Phone, req.Preset)
	if err != nil {
		httpx.WriteServiceError(c, err, "Registration failed, please try again later")
		return
	}

	setSessionCookie(c, token, h.authService.Signer().MaxAge())
	c.JSON(http.StatusOK, gin.H{
		"message": "Registered",
		"user":    user,
	})
}

func (h *Handler) Logout(c *gin.Context) {
	clearSessionCookie(c)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// LogoutRedirect 浏览器直接访问 /logout 时清除会话并回到首页
func (h *Handler) LogoutRedirect(c *gin.Context) {
	clearSessionCookie(c)
	c.Redirect(http.StatusFound, "/")
}

func (h *Handler) GetProviders(c *gin.Context) {
	c.JSON(http.StatusOK, moduledto.ProvidersResponse{Providers: h.authService.ProviderNames()})
}
