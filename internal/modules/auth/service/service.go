package service

import (
	"time"

	"github.com/Yersat/chatcode/internal/consts"
	"github.com/Yersat/chatcode/internal/modules/auth/oauth"
	"github.com/Yersat/chatcode/internal/modules/auth/repo"
	platformservice "github.com/Yersat/chatcode/internal/platform/service"
	"github.com/Yersat/chatcode/internal/platform/session"
	"github.com/Yersat/chatcode/internal/utils"
)

type Service struct {
	*platformservice.AppService
	userStore repo.UserStore
	signer    *utils.SessionSigner
	states    *StateGuard
	providers *oauth.Registry
	resolver  *SocialResolver
	now       func() time.Time
}

func New(
	appService *platformservice.AppService,
	userStore repo.UserStore,
	signer *utils.SessionSigner,
	sessions session.Store,
	providers *oauth.Registry,
	stateTTL time.Duration,
) *Service {
	s := &Service{
		AppService: appService,
		userStore:  userStore,
		signer:     signer,
		states:     NewStateGuard(sessions, stateTTL),
		providers:  providers,
		now:        time.Now,
	}
	s.resolver = NewSocialResolver(userStore, s.clock)
	return s
}

// SetClock 替换时钟，仅供测试使用
func (s *Service) SetClock(now func() time.Time) {
	s.now = now
}

func (s *Service) clock() time.Time {
	return s.now()
}

// Signer 身份会话签名器，cookie 写入时使用其有效期
func (s *Service) Signer() *utils.SessionSigner {
	return s.signer
}

// ProviderNames 已启用的第三方登录方式
func (s *Service) ProviderNames() []string {
	return s.providers.Names()
}

// IsSystemInitialized 返回系统是否已完成初始化
func (s *Service) IsSystemInitialized() bool {
	return !s.GetBool(consts.ConfigAllowInit)
}
