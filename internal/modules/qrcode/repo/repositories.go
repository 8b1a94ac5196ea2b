package repo

import "github.com/Yersat/chatcode/internal/model"

// UserStore 生成链接只需要按 ID 与用户名读取账号
type UserStore interface {
	FindByID(id uint) (*model.User, error)
	FindByUsername(username string) (*model.User, error)
}
