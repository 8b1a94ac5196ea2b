package handler

import (
	"net/http"

	"github.com/Yersat/chatcode/internal/modules/common/httpx"
	moduledto "github.com/Yersat/chatcode/internal/modules/settings/dto"

	"github.com/gin-gonic/gin"
)

// GetSettings 获取全部系统设置
func (h *Handler) GetSettings(c *gin.Context) {
	settings, err := h.settingsService.AdminListSettings()
	if err != nil {
		httpx.WriteServiceError(c, err, "获取配置失败")
		return
	}

	c.JSON(http.StatusOK, settings)
}

// UpdateSettings 批量更新系统设置
func (h *Handler) UpdateSettings(c *gin.Context) {
	var reqs []moduledto.UpdateSettingRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数格式错误"})
		return
	}

	if err := h.settingsService.AdminUpdateSettings(reqs); err != nil {
		httpx.WriteServiceError(c, err, "更新失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "配置更新成功",
		"count":   len(reqs),
	})
}
