package service

import (
	"errors"
	"strings"

	"github.com/Yersat/chatcode/internal/model"
	moduledto "github.com/Yersat/chatcode/internal/modules/user/dto"
	platformservice "github.com/Yersat/chatcode/internal/platform/service"
	"github.com/Yersat/chatcode/internal/utils"

	"gorm.io/gorm"
)

// GetProfile 获取当前用户资料
func (s *Service) GetProfile(userID uint) (*model.User, error) {
	user, err := s.userStore.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, platformservice.NewNotFoundError("User not found")
		}
		return nil, platformservice.NewInternalError("Failed to load profile")
	}
	return user, nil
}

// UpdateSettings 更新手机号与预设文本；空字符串表示清空
func (s *Service) UpdateSettings(userID uint, req moduledto.UpdateSettingsRequest) (*model.User, error) {
	updates := make(map[string]interface{})

	if req.Phone != nil {
		phone, err := normalizePhone(*req.Phone)
		if err != nil {
			return nil, err
		}
		updates["phone_e164"] = phone
	}
	if req.Preset != nil {
		preset, err := normalizePreset(*req.Preset)
		if err != nil {
			return nil, err
		}
		updates["preset_text"] = preset
	}

	if len(updates) > 0 {
		if err := s.userStore.UpdateByID(userID, updates); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, platformservice.NewNotFoundError("User not found")
			}
			return nil, platformservice.NewInternalError("Failed to save settings")
		}
	}

	return s.GetProfile(userID)
}

func normalizePhone(raw string) (string, error) {
	phone := strings.TrimSpace(raw)
	if phone == "" {
		return "", nil
	}
	if ok, msg := utils.ValidatePhoneE164(phone); !ok {
		return "", platformservice.NewValidationError(msg)
	}
	return phone, nil
}

func normalizePreset(raw string) (string, error) {
	preset := strings.TrimSpace(raw)
	if ok, msg := utils.ValidatePreset(preset); !ok {
		return "", platformservice.NewValidationError(msg)
	}
	return preset, nil
}
