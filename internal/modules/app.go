package modules

import (
	"time"

	"github.com/Yersat/chatcode/internal/modules/auth"
	"github.com/Yersat/chatcode/internal/modules/auth/oauth"
	"github.com/Yersat/chatcode/internal/modules/qrcode"
	qrservice "github.com/Yersat/chatcode/internal/modules/qrcode/service"
	"github.com/Yersat/chatcode/internal/modules/settings"
	settingsrepo "github.com/Yersat/chatcode/internal/modules/settings/repo"
	"github.com/Yersat/chatcode/internal/modules/system"
	systemrepo "github.com/Yersat/chatcode/internal/modules/system/repo"
	"github.com/Yersat/chatcode/internal/modules/user"
	userrepo "github.com/Yersat/chatcode/internal/modules/user/repo"
	platformservice "github.com/Yersat/chatcode/internal/platform/service"
	"github.com/Yersat/chatcode/internal/platform/session"
	"github.com/Yersat/chatcode/internal/utils"
)

type AppModules struct {
	Auth     *auth.Module
	User     *user.Module
	QRCode   *qrcode.Module
	Settings *settings.Module
	System   *system.Module
}

// OAuthStateTTL OAuth state 在服务端会话中的保留时间
type OAuthStateTTL time.Duration

func New(
	appService *platformservice.AppService,
	userStore userrepo.UserStore,
	settingStore settingsrepo.SettingStore,
	systemStore systemrepo.SystemStore,
	signer *utils.SessionSigner,
	sessions session.Store,
	providers *oauth.Registry,
	links *qrservice.LinkBuilder,
	stateTTL OAuthStateTTL,
) *AppModules {
	return &AppModules{
		Auth:     auth.New(appService, userStore, signer, sessions, providers, time.Duration(stateTTL)),
		User:     user.New(appService, userStore),
		QRCode:   qrcode.New(appService, userStore, links),
		Settings: settings.New(appService, settingStore),
		System:   system.New(appService, systemStore, userStore),
	}
}
