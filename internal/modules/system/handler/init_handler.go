package handler

import (
	"net/http"
	"sync"
	"time"

	"github.com/Yersat/chatcode/internal/modules/common/httpx"
	moduledto "github.com/Yersat/chatcode/internal/modules/system/dto"

	"github.com/gin-gonic/gin"
)

var initLock sync.Mutex

// Health 存活探针
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "time": time.Now().Unix()})
}

func (h *Handler) GetInitState(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"initialized": h.systemService.IsSystemInitialized(),
	})
}

func (h *Handler) Init(c *gin.Context) {
	// 加锁防止竞态条件
	initLock.Lock()
	defer initLock.Unlock()

	var initInfo moduledto.InitRequest
	if err := c.ShouldBindJSON(&initInfo); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	admin, err := h.systemService.InitializeSystem(initInfo)
	if err != nil {
		httpx.WriteServiceError(c, err, "Initialization failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Initialized",
		"username": admin.Username,
	})
}
