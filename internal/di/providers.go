package di

import (
	"github.com/Yersat/chatcode/internal/config"
	"github.com/Yersat/chatcode/internal/consts"
	"github.com/Yersat/chatcode/internal/modules"
	"github.com/Yersat/chatcode/internal/modules/auth/oauth"
	qrservice "github.com/Yersat/chatcode/internal/modules/qrcode/service"
	"github.com/Yersat/chatcode/internal/platform/service"
	"github.com/Yersat/chatcode/internal/platform/session"
	"github.com/Yersat/chatcode/internal/utils"
)

func ProvideSessionSigner(cfg config.Config) *utils.SessionSigner {
	return utils.NewSessionSigner(cfg.Session.Secret, cfg.Session.MaxAge(), consts.SessionTokenIssuer)
}

// ProvideSessionStore Redis 可用时共享 OAuth state，否则退回进程内存
func ProvideSessionStore(cfg config.Config) session.Store {
	return session.NewStore(service.GetRedisClient(), cfg.Redis.Prefix)
}

func ProvideOAuthRegistry(cfg config.Config) *oauth.Registry {
	return oauth.NewRegistryFromConfig(cfg)
}

func ProvideLinkBuilder(cfg config.Config) *qrservice.LinkBuilder {
	return qrservice.NewLinkBuilder(cfg.Link.BaseURL, cfg.Link.PromoText)
}

func ProvideOAuthStateTTL(cfg config.Config) modules.OAuthStateTTL {
	return modules.OAuthStateTTL(cfg.OAuth.StateTTL())
}
