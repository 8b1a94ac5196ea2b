package handler

import (
	"fmt"
	"net/http"

	"github.com/Yersat/chatcode/internal/modules/common/httpx"

	"github.com/gin-gonic/gin"
)

// GetMyLink 当前用户的聊天链接与二维码地址
func (h *Handler) GetMyLink(c *gin.Context) {
	userID, ok := httpx.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	link, err := h.qrService.UserLink(userID)
	if err != nil {
		httpx.WriteServiceError(c, err, "Failed to build link")
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": link})
}

// GetPublicPage 按用户名获取公开页面数据
func (h *Handler) GetPublicPage(c *gin.Context) {
	page, err := h.qrService.PublicPage(c.Param("username"))
	if err != nil {
		httpx.WriteServiceError(c, err, "Failed to load page")
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": page})
}

// GetQRCode 输出二维码 PNG，download=1 时作为附件下载
func (h *Handler) GetQRCode(c *gin.Context) {
	username := c.Query("u")
	img, err := h.qrService.QRCodePNG(username)
	if err != nil {
		httpx.WriteServiceError(c, err, "Failed to render QR code")
		return
	}

	if c.Query("download") == "1" {
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s_whatsapp_qr.png", username))
	}
	c.Header("Cache-Control", "no-cache")
	c.Data(http.StatusOK, "image/png", img)
}
