package repo

import (
	"time"

	"github.com/Yersat/chatcode/internal/model"

	"gorm.io/gorm"
)

type UserStore interface {
	FindByID(id uint) (*model.User, error)
	FindByUsername(username string) (*model.User, error)
	FindByEmail(email string) (*model.User, error)
	FindBySocial(provider, socialID string) (*model.User, error)
	Create(user *model.User) error
	Save(user *model.User) error
	UpdateByID(userID uint, updates map[string]interface{}) error
	DeleteByID(userID uint) error
	UsernameExists(username string, excludeUserID *uint) (bool, error)
	TouchLastLogin(userID uint, at time.Time) error
	AdminListUsers(keyword string, order string, offset int, limit int) ([]model.User, int64, error)
	CountStats(now time.Time) (*UserCounts, error)
}

// UserCounts 后台统计使用的聚合计数
type UserCounts struct {
	Total      int64
	Active     int64
	Admins     int64
	Social     int64
	WithPhone  int64
	NewLast7d  int64
	LoginsLast int64 // 最近 24 小时登录过的用户数
	ByProvider map[string]int64
}

func NewUserRepository(db *gorm.DB) UserStore {
	return &UserRepository{db: db}
}
