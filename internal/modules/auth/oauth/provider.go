// Package oauth 封装第三方登录 provider，每个 provider 各自负责授权地址、
// 换取 token、拉取资料以及从资料中提取身份字段。
package oauth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/oauth2"
)

var (
	ErrUnknownProvider = errors.New("oauth: unknown or unconfigured provider")
	ErrProfileRequest  = errors.New("oauth: profile request failed")
)

// maxProfileBytes 资料接口响应体上限
const maxProfileBytes = 1 << 20

// Identity 从资料中提取的身份字段
type Identity struct {
	SubjectID string
	Email     string
	Name      string
	Picture   string
}

// RawProfile provider 返回的原始资料
// VerifiedEmail 只有在 provider 明确标记为已验证时才会填充
type RawProfile struct {
	Fields        map[string]any
	VerifiedEmail string
}

type Provider interface {
	Name() string
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (*oauth2.Token, error)
	FetchProfile(ctx context.Context, token *oauth2.Token) (*RawProfile, error)
	Extract(fields map[string]string) Identity
}

// Endpoints 覆盖默认地址，测试时指向本地假服务
type Endpoints struct {
	AuthURL  string
	TokenURL string
	APIURL   string
}

// base 各 provider 共用的 oauth2 流程
type base struct {
	name string
	conf *oauth2.Config
}

func (b *base) Name() string {
	return b.name
}

func (b *base) AuthCodeURL(state string) string {
	return b.conf.AuthCodeURL(state)
}

func (b *base) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	if code == "" {
		return nil, errors.New("oauth: missing authorization code")
	}
	return b.conf.Exchange(ctx, code)
}

// getJSON 以 token 身份请求资料接口，数字按原样保留
func (b *base) getJSON(ctx context.Context, token *oauth2.Token, url string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := b.conf.Client(ctx, token).Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrProfileRequest, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: %s returned %d", ErrProfileRequest, url, resp.StatusCode)
	}

	dec := json.NewDecoder(io.LimitReader(resp.Body, maxProfileBytes))
	dec.UseNumber()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("%w: decode %s: %v", ErrProfileRequest, url, err)
	}
	return nil
}

func override(def, custom string) string {
	if custom != "" {
		return custom
	}
	return def
}
