//go:build wireinject
// +build wireinject

package di

import (
	"github.com/Yersat/chatcode/internal/config"
	"github.com/Yersat/chatcode/internal/modules"
	settingsrepo "github.com/Yersat/chatcode/internal/modules/settings/repo"
	systemrepo "github.com/Yersat/chatcode/internal/modules/system/repo"
	userrepo "github.com/Yersat/chatcode/internal/modules/user/repo"
	"github.com/Yersat/chatcode/internal/platform/service"
	"github.com/Yersat/chatcode/internal/router"

	"github.com/google/wire"
	"gorm.io/gorm"
)

func InitializeApplication(gormDB *gorm.DB, cfg config.Config) (*Application, error) {
	wire.Build(
		userrepo.NewUserRepository,
		settingsrepo.NewSettingRepository,
		systemrepo.NewSystemRepository,
		service.NewAppService,
		ProvideSessionSigner,
		ProvideSessionStore,
		ProvideOAuthRegistry,
		ProvideLinkBuilder,
		ProvideOAuthStateTTL,
		modules.New,
		router.NewRouter,
		NewApplication,
	)
	return nil, nil
}
