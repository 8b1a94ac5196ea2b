package repo

import (
	"context"
	"fmt"
	"time"

	"github.com/Yersat/chatcode/internal/model"

	"gorm.io/gorm"
)

type SystemRepository struct {
	db *gorm.DB
}

// InitializeSystem 在同一事务中写入站点设置并创建管理员
func (r *SystemRepository) InitializeSystem(settingValues map[string]string, admin *model.User) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for key, value := range settingValues {
			var count int64
			if err := tx.Model(&model.Setting{}).Where("key = ?", key).Count(&count).Error; err != nil {
				return fmt.Errorf("count setting %q failed: %w", key, err)
			}
			if count == 0 {
				if err := tx.Create(&model.Setting{Key: key, Value: value}).Error; err != nil {
					return fmt.Errorf("create setting %q failed: %w", key, err)
				}
				continue
			}
			if err := tx.Model(&model.Setting{}).Where("key = ?", key).Update("value", value).Error; err != nil {
				return fmt.Errorf("update setting %q failed: %w", key, err)
			}
		}

		if err := tx.Create(admin).Error; err != nil {
			return fmt.Errorf("create admin failed: %w", err)
		}
		return nil
	})
}

// Ping 检测数据库连通性并返回往返耗时
func (r *SystemRepository) Ping(ctx context.Context) (time.Duration, error) {
	sqlDB, err := r.db.DB()
	if err != nil {
		return 0, err
	}
	start := time.Now()
	if err := sqlDB.PingContext(ctx); err != nil {
		return 0, err
	}
	return time.Since(start), nil
}
