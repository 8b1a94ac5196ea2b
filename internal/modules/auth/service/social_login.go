package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Yersat/chatcode/internal/model"
	"github.com/Yersat/chatcode/internal/modules/auth/oauth"
	platformservice "github.com/Yersat/chatcode/internal/platform/service"
	"github.com/Yersat/chatcode/internal/utils"
)

var (
	ErrStateMismatch   = errors.New("oauth state mismatch")
	ErrProviderDenied  = errors.New("provider returned an error")
	ErrInactiveAccount = errors.New("account is inactive")
)

// BeginSocialLogin 生成 state 并返回 provider 授权地址
func (s *Service) BeginSocialLogin(ctx context.Context, sid, providerName string) (string, error) {
	provider, err := s.providers.Get(providerName)
	if err != nil {
		return "", platformservice.NewValidationError("Unsupported login provider")
	}
	state, err := s.states.Begin(ctx, sid)
	if err != nil {
		return "", platformservice.NewInternalError("Unable to start social login")
	}
	return provider.AuthCodeURL(state), nil
}

// SocialCallback provider 回调携带的参数
type SocialCallback struct {
	SID           string
	Code          string
	State         string
	ProviderError string
}

// CompleteSocialLogin 校验 state、换取资料、解析账号并签发会话令牌
// state 校验失败时不会访问 provider，也不会写入任何账号数据
func (s *Service) CompleteSocialLogin(ctx context.Context, providerName string, cb SocialCallback) (*model.User, string, error) {
	provider, err := s.providers.Get(providerName)
	if err != nil {
		return nil, "", err
	}

	// 无论结果如何都先消费 state
	stateOK := s.states.Verify(ctx, cb.SID, cb.State)
	if cb.ProviderError != "" {
		return nil, "", fmt.Errorf("%w: %s", ErrProviderDenied, cb.ProviderError)
	}
	if !stateOK {
		return nil, "", ErrStateMismatch
	}

	oauthToken, err := provider.Exchange(ctx, cb.Code)
	if err != nil {
		return nil, "", fmt.Errorf("exchange code: %w", err)
	}
	profile, err := provider.FetchProfile(ctx, oauthToken)
	if err != nil {
		return nil, "", fmt.Errorf("fetch profile: %w", err)
	}

	fields := utils.SanitizeProfile(profile.Fields)
	identity := provider.Extract(fields)
	trustedEmail, ok := utils.SanitizeProfileValue(profile.VerifiedEmail)
	if !ok {
		trustedEmail = ""
	}

	// 停用账号在 Resolve 中被拒绝，不会写入任何数据
	user, _, err := s.resolver.Resolve(SocialIdentity{
		Provider:     provider.Name(),
		Identity:     identity,
		TrustedEmail: trustedEmail,
		Payload:      fields,
	})
	if err != nil {
		return nil, "", err
	}

	sessionToken, err := s.signer.Issue(user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, sessionToken, nil
}

// IsUnknownProvider 判断错误是否由未启用的 provider 引起
func IsUnknownProvider(err error) bool {
	return errors.Is(err, oauth.ErrUnknownProvider)
}
