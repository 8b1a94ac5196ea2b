package handler

import (
	"testing"

	modulerepo "github.com/Yersat/chatcode/internal/modules/settings/repo"
	settingsservice "github.com/Yersat/chatcode/internal/modules/settings/service"
	platformservice "github.com/Yersat/chatcode/internal/platform/service"
	"github.com/Yersat/chatcode/internal/testutils"

	"gorm.io/gorm"
)

var (
	testService *platformservice.AppService
	testHandler *Handler
)

func setupTestDB(t *testing.T) *gorm.DB {
	gdb := testutils.SetupDB(t)
	settingStore := modulerepo.NewSettingRepository(gdb)
	testService = platformservice.NewAppService(settingStore)
	testHandler = New(settingsservice.New(testService, settingStore))
	testService.ClearCache()
	return gdb
}
