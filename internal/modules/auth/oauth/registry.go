package oauth

import (
	"strings"

	"github.com/Yersat/chatcode/internal/config"
	"github.com/Yersat/chatcode/internal/consts"
)

// Registry 只保存已配置 client id 与 secret 的 provider
type Registry struct {
	providers map[string]Provider
	order     []string
}

func NewRegistry(providers ...Provider) *Registry {
	r := &Registry{providers: make(map[string]Provider, len(providers))}
	for _, p := range providers {
		if p == nil {
			continue
		}
		if _, exists := r.providers[p.Name()]; !exists {
			r.order = append(r.order, p.Name())
		}
		r.providers[p.Name()] = p
	}
	return r
}

// NewRegistryFromConfig 按配置构建 provider，未显式配置回调地址时使用 base_url 拼接
func NewRegistryFromConfig(cfg config.Config) *Registry {
	var providers []Provider
	if g := cfg.OAuth.Google; g.Enabled() {
		providers = append(providers, NewGoogle(g.ClientID, g.ClientSecret,
			callbackURL(cfg.Server.BaseURL, g.RedirectURL, consts.ProviderGoogle), Endpoints{}))
	}
	if gh := cfg.OAuth.GitHub; gh.Enabled() {
		providers = append(providers, NewGitHub(gh.ClientID, gh.ClientSecret,
			callbackURL(cfg.Server.BaseURL, gh.RedirectURL, consts.ProviderGitHub), Endpoints{}))
	}
	return NewRegistry(providers...)
}

func callbackURL(baseURL, configured, provider string) string {
	if configured != "" {
		return configured
	}
	return strings.TrimRight(baseURL, "/") + "/auth/" + provider + "/callback"
}

func (r *Registry) Get(name string) (Provider, error) {
	p, ok := r.providers[name]
	if !ok {
		return nil, ErrUnknownProvider
	}
	return p, nil
}

// Names 已启用的 provider 名称，按注册顺序
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}
