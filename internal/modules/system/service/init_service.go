package service

import (
	"strings"

	"github.com/Yersat/chatcode/internal/consts"
	"github.com/Yersat/chatcode/internal/model"
	moduledto "github.com/Yersat/chatcode/internal/modules/system/dto"
	platformservice "github.com/Yersat/chatcode/internal/platform/service"
	"github.com/Yersat/chatcode/internal/utils"

	"go.uber.org/zap"
)

// IsSystemInitialized 返回系统是否已完成初始化。
func (s *Service) IsSystemInitialized() bool {
	return !s.GetBool(consts.ConfigAllowInit)
}

// InitializeSystem 执行系统初始化：写入站点名称并创建管理员账号。
func (s *Service) InitializeSystem(payload moduledto.InitRequest) (*model.User, error) {
	if s.IsSystemInitialized() {
		return nil, platformservice.NewForbiddenError("System already initialized")
	}
	username := strings.TrimSpace(payload.Username)
	if ok, msg := utils.ValidateUsername(username); !ok {
		return nil, platformservice.NewValidationError(msg)
	}
	if ok, msg := utils.ValidatePassword(payload.Password); !ok {
		return nil, platformservice.NewValidationError(msg)
	}
	siteName := strings.TrimSpace(payload.SiteName)
	if siteName == "" {
		return nil, platformservice.NewValidationError("Site name is required")
	}

	hashed, err := utils.HashPassword(payload.Password)
	if err != nil {
		return nil, platformservice.NewInternalError("Initialization failed")
	}

	now := s.now().UTC()
	admin := &model.User{
		Username:     username,
		PasswordHash: hashed,
		IsAdmin:      true,
		IsActive:     true,
		CreatedAt:    &now,
	}
	settingsToUpdate := map[string]string{
		consts.ConfigSiteName:  siteName,
		consts.ConfigAllowInit: "false",
	}
	if err := s.systemStore.InitializeSystem(settingsToUpdate, admin); err != nil {
		zap.L().Error("系统初始化失败", zap.String("username", username), zap.Error(err))
		return nil, platformservice.NewInternalError("Initialization failed")
	}

	s.ClearCache()
	zap.L().Info("✅ 系统初始化完成", zap.String("admin", username))
	return admin, nil
}
