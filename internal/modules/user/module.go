package user

import (
	"github.com/Yersat/chatcode/internal/modules/user/handler"
	"github.com/Yersat/chatcode/internal/modules/user/repo"
	"github.com/Yersat/chatcode/internal/modules/user/service"
	platformservice "github.com/Yersat/chatcode/internal/platform/service"
)

type Module struct {
	Service *service.Service
	Handler *handler.Handler
}

func New(appService *platformservice.AppService, userStore repo.UserStore) *Module {
	moduleService := service.New(appService, userStore)
	return &Module{
		Service: moduleService,
		Handler: handler.New(moduleService),
	}
}
