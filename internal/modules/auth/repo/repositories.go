package repo

import (
	"time"

	"github.com/Yersat/chatcode/internal/model"
)

// UserStore 认证流程需要的账号读写能力，由用户模块的仓储实现
type UserStore interface {
	FindByID(id uint) (*model.User, error)
	FindByUsername(username string) (*model.User, error)
	FindByEmail(email string) (*model.User, error)
	FindBySocial(provider, socialID string) (*model.User, error)
	Create(user *model.User) error
	Save(user *model.User) error
	UsernameExists(username string, excludeUserID *uint) (bool, error)
	TouchLastLogin(userID uint, at time.Time) error
}
