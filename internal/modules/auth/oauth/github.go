package oauth

import (
	"context"
	"strings"

	"github.com/Yersat/chatcode/internal/consts"

	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/github"
)

const githubAPIURL = "https://api.github.com"

type GitHub struct {
	base
	apiURL string
}

type githubEmail struct {
	Email    string `json:"email"`
	Primary  bool   `json:"primary"`
	Verified bool   `json:"verified"`
}

func NewGitHub(clientID, clientSecret, redirectURL string, ep Endpoints) *GitHub {
	endpoint := github.Endpoint
	endpoint.AuthURL = override(endpoint.AuthURL, ep.AuthURL)
	endpoint.TokenURL = override(endpoint.TokenURL, ep.TokenURL)

	return &GitHub{
		base: base{
			name: consts.ProviderGitHub,
			conf: &oauth2.Config{
				ClientID:     clientID,
				ClientSecret: clientSecret,
				RedirectURL:  redirectURL,
				Endpoint:     endpoint,
				Scopes:       []string{"read:user", "user:email"},
			},
		},
		apiURL: strings.TrimRight(override(githubAPIURL, ep.APIURL), "/"),
	}
}

// FetchProfile 读取 /user，并从 /user/emails 中挑选主邮箱且已验证的地址
func (g *GitHub) FetchProfile(ctx context.Context, token *oauth2.Token) (*RawProfile, error) {
	fields := map[string]any{}
	if err := g.getJSON(ctx, token, g.apiURL+"/user", &fields); err != nil {
		return nil, err
	}

	profile := &RawProfile{Fields: fields}

	var emails []githubEmail
	if err := g.getJSON(ctx, token, g.apiURL+"/user/emails", &emails); err != nil {
		// 邮箱接口失败不影响登录，只是无法按邮箱关联账号
		zap.L().Warn("获取 GitHub 邮箱列表失败", zap.Error(err))
		return profile, nil
	}
	for _, e := range emails {
		if e.Primary && e.Verified && strings.TrimSpace(e.Email) != "" {
			profile.VerifiedEmail = strings.TrimSpace(e.Email)
			break
		}
	}
	return profile, nil
}

func (g *GitHub) Extract(fields map[string]string) Identity {
	name := fields["name"]
	if name == "" {
		name = fields["login"]
	}
	return Identity{
		SubjectID: fields["id"],
		Email:     fields["email"],
		Name:      name,
		Picture:   fields["avatar_url"],
	}
}
