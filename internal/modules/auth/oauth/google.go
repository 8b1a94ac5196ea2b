package oauth

import (
	"context"
	"strings"

	"github.com/Yersat/chatcode/internal/consts"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

type Google struct {
	base
	userInfoURL string
}

func NewGoogle(clientID, clientSecret, redirectURL string, ep Endpoints) *Google {
	endpoint := google.Endpoint
	endpoint.AuthURL = override(endpoint.AuthURL, ep.AuthURL)
	endpoint.TokenURL = override(endpoint.TokenURL, ep.TokenURL)

	userInfoURL := googleUserInfoURL
	if ep.APIURL != "" {
		userInfoURL = strings.TrimRight(ep.APIURL, "/") + "/oauth2/v2/userinfo"
	}

	return &Google{
		base: base{
			name: consts.ProviderGoogle,
			conf: &oauth2.Config{
				ClientID:     clientID,
				ClientSecret: clientSecret,
				RedirectURL:  redirectURL,
				Endpoint:     endpoint,
				Scopes:       []string{"openid", "email", "profile"},
			},
		},
		userInfoURL: userInfoURL,
	}
}

func (g *Google) FetchProfile(ctx context.Context, token *oauth2.Token) (*RawProfile, error) {
	fields := map[string]any{}
	if err := g.getJSON(ctx, token, g.userInfoURL, &fields); err != nil {
		return nil, err
	}

	profile := &RawProfile{Fields: fields}
	if verified, ok := fields["verified_email"].(bool); ok && verified {
		if email, ok := fields["email"].(string); ok {
			profile.VerifiedEmail = strings.TrimSpace(email)
		}
	}
	return profile, nil
}

func (g *Google) Extract(fields map[string]string) Identity {
	return Identity{
		SubjectID: fields["id"],
		Email:     fields["email"],
		Name:      fields["name"],
		Picture:   fields["picture"],
	}
}
