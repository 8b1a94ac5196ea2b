package repo

import (
	"fmt"

	"github.com/Yersat/chatcode/internal/model"

	"gorm.io/gorm"
)

type SettingRepository struct {
	db *gorm.DB
}

// InitializeDefaults 插入缺失的默认配置，已存在的只同步描述与分类
func (r *SettingRepository) InitializeDefaults(defaults []model.Setting) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, def := range defaults {
			var count int64
			if err := tx.Model(&model.Setting{}).Where("key = ?", def.Key).Count(&count).Error; err != nil {
				return fmt.Errorf("count default setting %q failed: %w", def.Key, err)
			}
			if count == 0 {
				row := def
				if err := tx.Create(&row).Error; err != nil {
					return fmt.Errorf("create default setting %q failed: %w", def.Key, err)
				}
				continue
			}
			if err := tx.Model(&model.Setting{}).Where("key = ?", def.Key).Updates(map[string]interface{}{
				"category": def.Category,
				"desc":     def.Desc,
			}).Error; err != nil {
				return fmt.Errorf("update default setting metadata %q failed: %w", def.Key, err)
			}
		}
		return nil
	})
}

func (r *SettingRepository) FindByKey(key string) (*model.Setting, error) {
	var setting model.Setting
	if err := r.db.Where("key = ?", key).First(&setting).Error; err != nil {
		return nil, err
	}
	return &setting, nil
}

func (r *SettingRepository) Create(setting *model.Setting) error {
	return r.db.Create(setting).Error
}

func (r *SettingRepository) FindAll() ([]model.Setting, error) {
	var settings []model.Setting
	if err := r.db.Find(&settings).Error; err != nil {
		return nil, err
	}
	return settings, nil
}

// UpdateSettings 批量更新配置值，不存在的 key 会被创建
func (r *SettingRepository) UpdateSettings(items []UpdateSettingItem) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, item := range items {
			var count int64
			if err := tx.Model(&model.Setting{}).Where("key = ?", item.Key).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				if err := tx.Create(&model.Setting{Key: item.Key, Value: item.Value}).Error; err != nil {
					return err
				}
				continue
			}
			if err := tx.Model(&model.Setting{}).Where("key = ?", item.Key).Update("value", item.Value).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
