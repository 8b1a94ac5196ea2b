package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Yersat/chatcode/internal/model"
	"github.com/Yersat/chatcode/internal/modules/auth/oauth"
	"github.com/Yersat/chatcode/internal/modules/auth/repo"
	"github.com/Yersat/chatcode/internal/utils"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrMissingSubjectID  = errors.New("social identity has no subject id")
	errUsernameExhausted = errors.New("no free username candidate")
)

const maxUsernameAttempts = 1000

// SocialIdentity 一次第三方登录解析出的身份
type SocialIdentity struct {
	Provider     string
	Identity     oauth.Identity
	TrustedEmail string            // provider 标记为已验证的邮箱，可为空
	Payload      map[string]string // 过滤后的资料，原样存档
}

type matchStrategy struct {
	name string
	find func(in *SocialIdentity) (*model.User, error)
	link bool // 命中后是否把 provider 绑定到该账号
}

// SocialResolver 按顺序尝试匹配已有账号，全部未命中时创建新账号
type SocialResolver struct {
	userStore  repo.UserStore
	now        func() time.Time
	strategies []matchStrategy
}

func NewSocialResolver(userStore repo.UserStore, now func() time.Time) *SocialResolver {
	r := &SocialResolver{userStore: userStore, now: now}
	r.strategies = []matchStrategy{
		{name: "provider_subject", find: r.byProviderSubject},
		{name: "verified_email", find: r.byVerifiedEmail, link: true},
	}
	return r
}

func (r *SocialResolver) byProviderSubject(in *SocialIdentity) (*model.User, error) {
	return r.userStore.FindBySocial(in.Provider, in.Identity.SubjectID)
}

func (r *SocialResolver) byVerifiedEmail(in *SocialIdentity) (*model.User, error) {
	if in.TrustedEmail == "" {
		return nil, gorm.ErrRecordNotFound
	}
	return r.userStore.FindByEmail(in.TrustedEmail)
}

// Resolve 返回对应的账号以及是否为新建
func (r *SocialResolver) Resolve(in SocialIdentity) (*model.User, bool, error) {
	in.Identity.SubjectID = strings.TrimSpace(in.Identity.SubjectID)
	if in.Identity.SubjectID == "" {
		return nil, false, ErrMissingSubjectID
	}
	in.TrustedEmail = strings.TrimSpace(in.TrustedEmail)

	for _, strategy := range r.strategies {
		user, err := strategy.find(&in)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			continue
		}
		if err != nil {
			return nil, false, fmt.Errorf("match by %s: %w", strategy.name, err)
		}
		if !user.IsActive {
			zap.L().Warn("第三方登录命中已停用账号",
				zap.String("provider", in.Provider),
				zap.Uint("user_id", user.ID))
			return nil, false, ErrInactiveAccount
		}

		if strategy.link {
			provider, subject := in.Provider, in.Identity.SubjectID
			user.SocialProvider = &provider
			user.SocialID = &subject
		}
		r.applyProfile(user, &in)
		if err := r.userStore.Save(user); err != nil {
			return nil, false, fmt.Errorf("update %s user: %w", strategy.name, err)
		}
		zap.L().Info("第三方登录匹配到已有账号",
			zap.String("provider", in.Provider),
			zap.String("strategy", strategy.name),
			zap.Uint("user_id", user.ID))
		return user, false, nil
	}

	user, err := r.create(&in)
	if err != nil {
		return nil, false, err
	}
	return user, true, nil
}

func (r *SocialResolver) applyProfile(user *model.User, in *SocialIdentity) {
	if name := strings.TrimSpace(in.Identity.Name); name != "" {
		user.FullName = name
	}
	if picture := strings.TrimSpace(in.Identity.Picture); picture != "" {
		user.ProfilePicture = picture
	}
	if user.Email == "" && in.TrustedEmail != "" {
		user.Email = in.TrustedEmail
	}
	if payload, err := json.Marshal(in.Payload); err == nil {
		user.SocialData = datatypes.JSON(payload)
	}
	now := r.now()
	user.LastLogin = &now
}

func (r *SocialResolver) create(in *SocialIdentity) (*model.User, error) {
	now := r.now()
	provider, subject := in.Provider, in.Identity.SubjectID
	user := &model.User{
		IsActive:       true,
		CreatedAt:      &now,
		SocialProvider: &provider,
		SocialID:       &subject,
	}
	r.applyProfile(user, in)

	base := usernameBase(in)
	var lastErr error
	// 并发创建时用户名可能被抢占，重新挑选后再试
	for attempt := 0; attempt < 3; attempt++ {
		username, err := r.uniqueUsername(base)
		if err != nil {
			return nil, err
		}
		user.Username = username
		if lastErr = r.userStore.Create(user); lastErr == nil {
			zap.L().Info("第三方登录创建新账号",
				zap.String("provider", provider),
				zap.String("username", username),
				zap.Uint("user_id", user.ID))
			return user, nil
		}
		user.ID = 0
	}
	return nil, fmt.Errorf("create social user: %w", lastErr)
}

// usernameBase 优先使用邮箱前缀，否则使用 {provider}_{subjectId}
func usernameBase(in *SocialIdentity) string {
	email := in.TrustedEmail
	if email == "" {
		email = strings.TrimSpace(in.Identity.Email)
	}
	if at := strings.Index(email, "@"); at > 0 {
		return utils.NormalizeUsernameCandidate(email[:at])
	}
	return utils.NormalizeUsernameCandidate(in.Provider + "_" + in.Identity.SubjectID)
}

// uniqueUsername 依次尝试 base、base_1、base_2……直到未被占用
func (r *SocialResolver) uniqueUsername(base string) (string, error) {
	for i := 0; i < maxUsernameAttempts; i++ {
		candidate := base
		if i > 0 {
			suffix := "_" + strconv.Itoa(i)
			stem := base
			if len(stem)+len(suffix) > utils.UsernameMaxLen {
				stem = stem[:utils.UsernameMaxLen-len(suffix)]
			}
			candidate = stem + suffix
		}
		exists, err := r.userStore.UsernameExists(candidate, nil)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
	}
	return "", errUsernameExhausted
}
