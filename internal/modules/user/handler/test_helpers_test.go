package handler

import (
	"os"
	"testing"

	"github.com/Yersat/chatcode/internal/config"
	settingsrepo "github.com/Yersat/chatcode/internal/modules/settings/repo"
	userrepo "github.com/Yersat/chatcode/internal/modules/user/repo"
	userservice "github.com/Yersat/chatcode/internal/modules/user/service"
	platformservice "github.com/Yersat/chatcode/internal/platform/service"
	"github.com/Yersat/chatcode/internal/testutils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var testHandler *Handler

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	config.Set(config.Config{Server: config.ServerConfig{Mode: "debug"}})
	os.Exit(m.Run())
}

func setupTestDB(t *testing.T) *gorm.DB {
	gdb := testutils.SetupDB(t)
	userStore := userrepo.NewUserRepository(gdb)
	settingStore := settingsrepo.NewSettingRepository(gdb)
	appService := platformservice.NewAppService(settingStore)
	testHandler = New(userservice.New(appService, userStore))
	appService.ClearCache()
	return gdb
}

// asUser 模拟认证中间件写入的上下文
func asUser(id uint, admin bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("id", id)
		c.Set("admin", admin)
		c.Next()
	}
}
