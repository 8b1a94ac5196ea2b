package middleware

import (
	"os"
	"testing"

	"github.com/Yersat/chatcode/internal/config"
	"github.com/Yersat/chatcode/internal/model"
	settingsrepo "github.com/Yersat/chatcode/internal/modules/settings/repo"
	"github.com/Yersat/chatcode/internal/platform/service"
	"github.com/Yersat/chatcode/internal/testutils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var testService *service.AppService

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	config.Set(config.Config{Server: config.ServerConfig{Mode: "debug"}})
	os.Exit(m.Run())
}

func setupTestDB(t *testing.T) *gorm.DB {
	gdb := testutils.SetupDB(t)
	settingStore := settingsrepo.NewSettingRepository(gdb)
	testService = service.NewAppService(settingStore)
	testService.ClearCache()
	return gdb
}

func saveSetting(t *testing.T, gdb *gorm.DB, key, value string) {
	t.Helper()
	if err := gdb.Save(&model.Setting{Key: key, Value: value}).Error; err != nil {
		t.Fatalf("设置配置项失败: %v", err)
	}
	testService.ClearCache()
}
