package service

import (
	"errors"
	"strings"

	"github.com/Yersat/chatcode/internal/consts"
	"github.com/Yersat/chatcode/internal/model"
	platformservice "github.com/Yersat/chatcode/internal/platform/service"
	"github.com/Yersat/chatcode/internal/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const invalidCredentialsMessage = "Invalid credentials"

// LoginUser 校验用户名密码并签发会话令牌
// 用户不存在、仅社交登录、密码错误、账号停用统一返回同一个错误
func (s *Service) LoginUser(username, password string) (*model.User, string, error) {
	user, err := s.userStore.FindByUsername(strings.TrimSpace(username))
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			zap.L().Error("登录查询用户失败", zap.Error(err))
			return nil, "", platformservice.NewInternalError("Login failed, please try again later")
		}
		return nil, "", platformservice.NewUnauthorizedError(invalidCredentialsMessage)
	}

	if !user.HasPassword() || !utils.CheckPassword(password, user.PasswordHash) || !user.IsActive {
		return nil, "", platformservice.NewUnauthorizedError(invalidCredentialsMessage)
	}

	return s.startSession(user)
}

// RegisterUser 创建本地账号并签发会话令牌
func (s *Service) RegisterUser(username, password, phone, preset string) (*model.User, string, error) {
	if !s.IsSystemInitialized() {
		return nil, "", platformservice.NewForbiddenError("System is not initialized yet")
	}
	if !s.GetBool(consts.ConfigAllowRegister) {
		return nil, "", platformservice.NewForbiddenError("Registration is closed")
	}

	username = strings.TrimSpace(username)
	phone = strings.TrimSpace(phone)
	preset = strings.TrimSpace(preset)

	if ok, msg := utils.ValidateUsername(username); !ok {
		return nil, "", platformservice.NewValidationError(msg)
	}
	if ok, msg := utils.ValidatePassword(password); !ok {
		return nil, "", platformservice.NewValidationError(msg)
	}
	if ok, msg := utils.ValidatePhoneE164(phone); !ok {
		return nil, "", platformservice.NewValidationError(msg)
	}
	if ok, msg := utils.ValidatePreset(preset); !ok {
		return nil, "", platformservice.NewValidationError(msg)
	}

	taken, err := s.userStore.UsernameExists(username, nil)
	if err != nil {
		return nil, "", platformservice.NewInternalError("Registration failed, please try again later")
	}
	if taken {
		return nil, "", platformservice.NewValidationError("Username already taken")
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, "", platformservice.NewInternalError("Registration failed, please try again later")
	}

	now := s.now()
	user := &model.User{
		Username:     username,
		PasswordHash: hashed,
		PhoneE164:    phone,
		PresetText:   preset,
		IsActive:     true,
		CreatedAt:    &now,
	}
	if err := s.userStore.Create(user); err != nil {
		// 唯一索引兜底并发注册
		if exists, _ := s.userStore.UsernameExists(username, nil); exists {
			return nil, "", platformservice.NewValidationError("Username already taken")
		}
		zap.L().Error("创建用户失败", zap.String("username", username), zap.Error(err))
		return nil, "", platformservice.NewInternalError("Registration failed, please try again later")
	}

	zap.L().Info("新用户注册", zap.Uint("user_id", user.ID), zap.String("username", username))
	return s.startSession(user)
}

// ResolveSession 解析会话令牌并加载当前账号；停用账号视为未登录
func (s *Service) ResolveSession(token string) (*model.User, bool) {
	userID, ok := s.signer.Read(token)
	if !ok {
		return nil, false
	}
	user, err := s.userStore.FindByID(userID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			zap.L().Warn("加载会话用户失败", zap.Uint("user_id", userID), zap.Error(err))
		}
		return nil, false
	}
	if !user.IsActive {
		return nil, false
	}
	return user, true
}

// startSession 刷新最后登录时间并签发令牌
func (s *Service) startSession(user *model.User) (*model.User, string, error) {
	now := s.now()
	if err := s.userStore.TouchLastLogin(user.ID, now); err != nil {
		zap.L().Warn("更新最后登录时间失败", zap.Uint("user_id", user.ID), zap.Error(err))
	} else {
		user.LastLogin = &now
	}

	token, err := s.signer.Issue(user.ID)
	if err != nil {
		return nil, "", platformservice.NewInternalError("Login failed, please try again later")
	}
	return user, token, nil
}
