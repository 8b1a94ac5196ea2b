package handler

import (
	"net/http"

	"github.com/Yersat/chatcode/internal/modules/common/httpx"

	"github.com/gin-gonic/gin"
)

// GetServerStats 获取用户统计与运行时信息
func (h *Handler) GetServerStats(c *gin.Context) {
	stats, err := h.systemService.AdminGetServerStats()
	if err != nil {
		httpx.WriteServiceError(c, err, "Failed to count users")
		return
	}

	c.JSON(http.StatusOK, stats)
}

// GetSystemStatus 数据库延迟、Redis 模式、运行时长与版本
func (h *Handler) GetSystemStatus(c *gin.Context) {
	c.JSON(http.StatusOK, h.systemService.AdminGetSystemStatus(c.Request.Context()))
}
