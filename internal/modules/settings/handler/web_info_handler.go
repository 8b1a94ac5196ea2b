package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) GetWebInfo(c *gin.Context) {
	c.JSON(http.StatusOK, h.settingsService.GetWebInfo())
}
