package di

import (
	"github.com/Yersat/chatcode/internal/platform/service"
	"github.com/Yersat/chatcode/internal/router"
)

type Application struct {
	Router  *router.Router
	Service *service.AppService
}

func NewApplication(r *router.Router, s *service.AppService) *Application {
	return &Application{
		Router:  r,
		Service: s,
	}
}
