package qrcode

import (
	"github.com/Yersat/chatcode/internal/modules/qrcode/handler"
	"github.com/Yersat/chatcode/internal/modules/qrcode/repo"
	"github.com/Yersat/chatcode/internal/modules/qrcode/service"
	platformservice "github.com/Yersat/chatcode/internal/platform/service"
)

type Module struct {
	Service *service.Service
	Handler *handler.Handler
}

func New(appService *platformservice.AppService, userStore repo.UserStore, links *service.LinkBuilder) *Module {
	moduleService := service.New(appService, userStore, links)
	return &Module{
		Service: moduleService,
		Handler: handler.New(moduleService),
	}
}
