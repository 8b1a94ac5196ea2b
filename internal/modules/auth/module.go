package auth

import (
	"time"

	"github.com/Yersat/chatcode/internal/modules/auth/handler"
	"github.com/Yersat/chatcode/internal/modules/auth/oauth"
	"github.com/Yersat/chatcode/internal/modules/auth/repo"
	"github.com/Yersat/chatcode/internal/modules/auth/service"
	platformservice "github.com/Yersat/chatcode/internal/platform/service"
	"github.com/Yersat/chatcode/internal/platform/session"
	"github.com/Yersat/chatcode/internal/utils"
)

type Module struct {
	Service *service.Service
	Handler *handler.Handler
}

func New(
	appService *platformservice.AppService,
	userStore repo.UserStore,
	signer *utils.SessionSigner,
	sessions session.Store,
	providers *oauth.Registry,
	stateTTL time.Duration,
) *Module {
	moduleService := service.New(appService, userStore, signer, sessions, providers, stateTTL)
	moduleHandler := handler.New(moduleService)

	return &Module{
		Service: moduleService,
		Handler: moduleHandler,
	}
}
