package repo

import (
	"context"
	"time"

	"github.com/Yersat/chatcode/internal/model"
	userrepo "github.com/Yersat/chatcode/internal/modules/user/repo"

	"gorm.io/gorm"
)

type SystemStore interface {
	InitializeSystem(settingValues map[string]string, admin *model.User) error
	Ping(ctx context.Context) (time.Duration, error)
}

// UserStatsStore 后台统计只需要用户聚合计数
type UserStatsStore interface {
	CountStats(now time.Time) (*userrepo.UserCounts, error)
}

func NewSystemRepository(db *gorm.DB) SystemStore {
	return &SystemRepository{db: db}
}
