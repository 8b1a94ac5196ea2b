package service

import (
	"sort"
	"strconv"
	"strings"

	"github.com/Yersat/chatcode/internal/consts"
	"github.com/Yersat/chatcode/internal/model"
	moduledto "github.com/Yersat/chatcode/internal/modules/settings/dto"
	settingsrepo "github.com/Yersat/chatcode/internal/modules/settings/repo"
	platformservice "github.com/Yersat/chatcode/internal/platform/service"
)

// AdminListSettings 获取全部系统设置，按默认配置定义顺序排列
func (s *Service) AdminListSettings() ([]model.Setting, error) {
	settings, err := s.settingStore.FindAll()
	if err != nil {
		return nil, platformservice.NewInternalError("获取配置失败")
	}

	order := make(map[string]int, len(platformservice.DefaultSettings))
	for i, def := range platformservice.DefaultSettings {
		order[def.Key] = i
	}
	sort.SliceStable(settings, func(i, j int) bool {
		li, lok := order[settings[i].Key]
		ri, rok := order[settings[j].Key]
		if lok && rok {
			return li < ri
		}
		if lok != rok {
			return lok
		}
		return settings[i].Key < settings[j].Key
	})
	return settings, nil
}

// AdminUpdateSettings 批量更新系统设置，并在成功后清理配置缓存。
func (s *Service) AdminUpdateSettings(items []moduledto.UpdateSettingRequest) error {
	if len(items) == 0 {
		return platformservice.NewValidationError("没有需要更新的配置")
	}
	for _, item := range items {
		if err := validateSettingUpdate(item); err != nil {
			return err
		}
	}

	repoItems := make([]settingsrepo.UpdateSettingItem, 0, len(items))
	for _, item := range items {
		repoItems = append(repoItems, settingsrepo.UpdateSettingItem{
			Key:   item.Key,
			Value: strings.TrimSpace(item.Value),
		})
	}

	if err := s.settingStore.UpdateSettings(repoItems); err != nil {
		return platformservice.NewInternalError("更新失败")
	}

	s.ClearCache()
	return nil
}

func validateSettingUpdate(item moduledto.UpdateSettingRequest) error {
	key := strings.TrimSpace(item.Key)
	if key == "" {
		return platformservice.NewValidationError("配置键不能为空")
	}
	value := strings.TrimSpace(item.Value)

	switch key {
	case consts.ConfigAllowInit, consts.ConfigAllowRegister, consts.ConfigRateLimitEnabled:
		if _, err := strconv.ParseBool(value); err != nil {
			return platformservice.NewValidationError(key + " 必须为 true 或 false")
		}
	case consts.ConfigRateLimitAuthRPS:
		rps, err := strconv.ParseFloat(value, 64)
		if err != nil || rps < 0 {
			return platformservice.NewValidationError("认证接口 RPS 必须为非负数")
		}
	case consts.ConfigRateLimitAuthBurst, consts.ConfigMaxRequestBodySize:
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return platformservice.NewValidationError(key + " 必须为正整数")
		}
	case consts.ConfigQRSize:
		n, err := strconv.Atoi(value)
		if err != nil || n < 128 || n > 1024 {
			return platformservice.NewValidationError("二维码尺寸必须在 128 到 1024 像素之间")
		}
	case consts.ConfigSiteName:
		if value == "" {
			return platformservice.NewValidationError("站点名称不能为空")
		}
	}

	return nil
}

// GetWebInfo 返回前台展示用的公共配置项
func (s *Service) GetWebInfo() []moduledto.WebInfoResponse {
	allowKeys := []string{
		consts.ConfigSiteName,
		consts.ConfigSiteDescription,
		consts.ConfigAllowRegister,
	}

	response := make([]moduledto.WebInfoResponse, 0, len(allowKeys))
	for _, key := range allowKeys {
		response = append(response, moduledto.WebInfoResponse{
			Key:   key,
			Value: s.GetString(key),
		})
	}
	return response
}
