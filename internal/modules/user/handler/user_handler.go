package handler

import (
	"net/http"

	"github.com/Yersat/chatcode/internal/modules/common/httpx"
	moduledto "github.com/Yersat/chatcode/internal/modules/user/dto"

	"github.com/gin-gonic/gin"
)

// GetProfile 获取当前登录用户资料
func (h *Handler) GetProfile(c *gin.Context) {
	userID, ok := httpx.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	user, err := h.userService.GetProfile(userID)
	if err != nil {
		httpx.WriteServiceError(c, err, "Failed to load profile")
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": user})
}

// UpdateSettings 修改手机号与预设文本
func (h *Handler) UpdateSettings(c *gin.Context) {
	userID, ok := httpx.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req moduledto.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	user, err := h.userService.UpdateSettings(userID, req)
	if err != nil {
		httpx.WriteServiceError(c, err, "Failed to save settings")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Settings saved", "data": user})
}
