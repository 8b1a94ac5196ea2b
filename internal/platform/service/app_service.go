package service

import (
	"errors"
	"strconv"
	"sync"

	"github.com/Yersat/chatcode/internal/model"
	settingsrepo "github.com/Yersat/chatcode/internal/modules/settings/repo"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const defaultValueNotFound = "||__NOT_FOUND__||"

// AppService 持有运行时配置缓存，由各业务模块的 Service 嵌入
type AppService struct {
	settingStore  settingsrepo.SettingStore
	settingsCache sync.Map
}

func NewAppService(settingStore settingsrepo.SettingStore) *AppService {
	return &AppService{settingStore: settingStore}
}

// InitializeSettings 写入缺失的默认配置项
func (s *AppService) InitializeSettings() error {
	if err := s.settingStore.InitializeDefaults(DefaultSettings); err != nil {
		return err
	}
	s.ClearCache()
	return nil
}

// ClearCache 清空配置缓存
func (s *AppService) ClearCache() {
	s.settingsCache.Range(func(key, _ interface{}) bool {
		s.settingsCache.Delete(key)
		return true
	})
}

func (s *AppService) GetString(key string) string {
	if val, ok := s.settingsCache.Load(key); ok {
		if strVal, ok := val.(string); ok {
			if strVal == defaultValueNotFound {
				return ""
			}
			return strVal
		}
		s.settingsCache.Delete(key)
	}

	setting, err := s.settingStore.FindByKey(key)
	if err == nil {
		s.settingsCache.Store(key, setting.Value)
		return setting.Value
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		// 数据库异常时不缓存，下次重试
		zap.L().Warn("读取配置失败", zap.String("key", key), zap.Error(err))
		if def, ok := findDefaultSetting(key); ok {
			return def.Value
		}
		return ""
	}

	// 数据库没查到，尝试查找默认配置
	if def, ok := findDefaultSetting(key); ok {
		newSetting := def
		// 忽略并发写入导致的主键冲突
		_ = s.settingStore.Create(&newSetting)
		s.settingsCache.Store(key, newSetting.Value)
		return newSetting.Value
	}

	s.settingsCache.Store(key, defaultValueNotFound)
	return ""
}

func (s *AppService) GetInt(key string) int {
	val, err := strconv.Atoi(s.GetString(key))
	if err != nil {
		return 0
	}
	return val
}

func (s *AppService) GetFloat64(key string) float64 {
	val, err := strconv.ParseFloat(s.GetString(key), 64)
	if err != nil {
		return 0
	}
	return val
}

func (s *AppService) GetBool(key string) bool {
	// ParseBool 支持 "1", "t", "T", "true", "TRUE", "True"
	val, err := strconv.ParseBool(s.GetString(key))
	if err != nil {
		return false
	}
	return val
}

func findDefaultSetting(key string) (model.Setting, bool) {
	for _, def := range DefaultSettings {
		if def.Key == key {
			return def, true
		}
	}
	return model.Setting{}, false
}
