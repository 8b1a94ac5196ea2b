package system

import (
	"github.com/Yersat/chatcode/internal/modules/system/handler"
	"github.com/Yersat/chatcode/internal/modules/system/repo"
	"github.com/Yersat/chatcode/internal/modules/system/service"
	platformservice "github.com/Yersat/chatcode/internal/platform/service"
)

type Module struct {
	Service *service.Service
	Handler *handler.Handler
}

func New(
	appService *platformservice.AppService,
	systemStore repo.SystemStore,
	userStore repo.UserStatsStore,
) *Module {
	moduleService := service.New(appService, systemStore, userStore)
	moduleHandler := handler.New(moduleService)

	return &Module{
		Service: moduleService,
		Handler: moduleHandler,
	}
}
