package settings

import (
	"github.com/Yersat/chatcode/internal/modules/settings/handler"
	"github.com/Yersat/chatcode/internal/modules/settings/repo"
	"github.com/Yersat/chatcode/internal/modules/settings/service"
	platformservice "github.com/Yersat/chatcode/internal/platform/service"
)

type Module struct {
	Service *service.Service
	Handler *handler.Handler
}

func New(appService *platformservice.AppService, settingStore repo.SettingStore) *Module {
	moduleService := service.New(appService, settingStore)
	return &Module{
		Service: moduleService,
		Handler: handler.New(moduleService),
	}
}
