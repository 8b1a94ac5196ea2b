package service

import (
	"errors"
	"strings"
	"time"

	"github.com/Yersat/chatcode/internal/model"
	moduledto "github.com/Yersat/chatcode/internal/modules/user/dto"
	platformservice "github.com/Yersat/chatcode/internal/platform/service"
	"github.com/Yersat/chatcode/internal/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const maxAdminPageSize = 100

// AdminListUsers 按分页与关键字查询用户列表
func (s *Service) AdminListUsers(req moduledto.AdminUserListRequest) ([]model.User, int64, int, int, error) {
	page, pageSize := normalizeAdminPagination(req.Page, req.PageSize)
	users, total, err := s.userStore.AdminListUsers(
		req.Keyword,
		resolveAdminUserSortOrder(req.Order),
		(page-1)*pageSize,
		pageSize,
	)
	if err != nil {
		return nil, 0, page, pageSize, platformservice.NewInternalError("Failed to list users")
	}
	return users, total, page, pageSize, nil
}

// AdminGetUserDetail 根据用户 ID 获取详情
func (s *Service) AdminGetUserDetail(id uint) (*model.User, error) {
	user, err := s.userStore.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, platformservice.NewNotFoundError("User not found")
		}
		return nil, platformservice.NewInternalError("Failed to load user")
	}
	return user, nil
}

// AdminCreateUser 后台创建本地账号
func (s *Service) AdminCreateUser(req moduledto.CreateUserRequest) (*model.User, error) {
	username := strings.TrimSpace(req.Username)
	if ok, msg := utils.ValidateUsername(username); !ok {
		return nil, platformservice.NewValidationError(msg)
	}
	if ok, msg := utils.ValidatePassword(req.Password); !ok {
		return nil, platformservice.NewValidationError(msg)
	}
	if err := s.ensureUsernameFree(username, nil); err != nil {
		return nil, err
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, platformservice.NewInternalError("Failed to create user")
	}

	now := time.Now()
	user := model.User{
		Username:     username,
		PasswordHash: hashed,
		IsAdmin:      req.IsAdmin,
		IsActive:     true,
		CreatedAt:    &now,
	}
	if req.Phone != nil {
		if user.PhoneE164, err = normalizePhone(*req.Phone); err != nil {
			return nil, err
		}
	}
	if req.Preset != nil {
		if user.PresetText, err = normalizePreset(*req.Preset); err != nil {
			return nil, err
		}
	}
	if req.Email != nil {
		if user.Email, err = normalizeEmail(*req.Email); err != nil {
			return nil, err
		}
	}

	if err := s.userStore.Create(&user); err != nil {
		zap.L().Error("后台创建用户失败", zap.String("username", username), zap.Error(err))
		return nil, platformservice.NewInternalError("Failed to create user")
	}
	return &user, nil
}

// AdminPrepareUserUpdates 校验后台用户更新输入并构建 updates
// 管理员不能撤销自己的管理员权限，也不能停用自己
func (s *Service) AdminPrepareUserUpdates(actorID, userID uint, req moduledto.UpdateUserRequest) (map[string]interface{}, error) {
	updates := make(map[string]interface{})

	if req.Username != nil {
		username := strings.TrimSpace(*req.Username)
		if ok, msg := utils.ValidateUsername(username); !ok {
			return nil, platformservice.NewValidationError(msg)
		}
		if err := s.ensureUsernameFree(username, &userID); err != nil {
			return nil, err
		}
		updates["username"] = username
	}

	if req.Password != nil {
		if ok, msg := utils.ValidatePassword(*req.Password); !ok {
			return nil, platformservice.NewValidationError(msg)
		}
		hashed, err := utils.HashPassword(*req.Password)
		if err != nil {
			return nil, platformservice.NewInternalError("Failed to update user")
		}
		updates["password_hash"] = hashed
	}

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

	if req.Email != nil {
		email, err := normalizeEmail(*req.Email)
		if err != nil {
			return nil, err
		}
		updates["email"] = email
	}

	if req.FullName != nil {
		updates["full_name"] = strings.TrimSpace(*req.FullName)
	}

	if req.IsAdmin != nil {
		if actorID == userID && !*req.IsAdmin {
			return nil, platformservice.NewForbiddenError("You cannot remove your own admin rights")
		}
		updates["is_admin"] = *req.IsAdmin
	}

	if req.IsActive != nil {
		if actorID == userID && !*req.IsActive {
			return nil, platformservice.NewForbiddenError("You cannot deactivate your own account")
		}
		updates["is_active"] = *req.IsActive
	}

	return updates, nil
}

// AdminApplyUserUpdates 将更新字段应用到指定用户
func (s *Service) AdminApplyUserUpdates(userID uint, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}

	if err := s.userStore.UpdateByID(userID, updates); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return platformservice.NewNotFoundError("User not found")
		}
		return platformservice.NewInternalError("Failed to update user")
	}
	return nil
}

// AdminDeleteUser 删除用户；管理员账号不可删除
func (s *Service) AdminDeleteUser(userID uint) error {
	user, err := s.AdminGetUserDetail(userID)
	if err != nil {
		return err
	}
	if user.IsAdmin {
		return platformservice.NewForbiddenError("Admin accounts cannot be deleted")
	}

	if err := s.userStore.DeleteByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return platformservice.NewNotFoundError("User not found")
		}
		return platformservice.NewInternalError("Failed to delete user")
	}
	zap.L().Info("管理员删除用户", zap.Uint("user_id", userID), zap.String("username", user.Username))
	return nil
}

func (s *Service) ensureUsernameFree(username string, excludeUserID *uint) error {
	taken, err := s.userStore.UsernameExists(username, excludeUserID)
	if err != nil {
		return platformservice.NewInternalError("Failed to check username")
	}
	if taken {
		return platformservice.NewValidationError("Username already taken")
	}
	return nil
}

func normalizeAdminPagination(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	if pageSize > maxAdminPageSize {
		pageSize = maxAdminPageSize
	}
	return page, pageSize
}

// resolveAdminUserSortOrder 解析管理员用户列表排序表达式
func resolveAdminUserSortOrder(order string) string {
	switch order {
	case "asc":
		return "id asc"
	case "last_login":
		return "last_login desc"
	case "username":
		return "username asc"
	default:
		return "id desc"
	}
}

func normalizeEmail(raw string) (string, error) {
	email := strings.TrimSpace(raw)
	if email == "" {
		return "", nil
	}
	if ok, msg := utils.ValidateEmail(email); !ok {
		return "", platformservice.NewValidationError(msg)
	}
	return email, nil
}
