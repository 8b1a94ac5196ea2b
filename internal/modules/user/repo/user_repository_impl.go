package repo

import (
	"strings"
	"time"

	"github.com/Yersat/chatcode/internal/model"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func (r *UserRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByUsername(username string) (*model.User, error) {
	var user model.User
	if err := r.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByEmail 同一邮箱存在多个账号时取最早创建的一个
func (r *UserRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	if err := r.db.Where("email = ?", email).Order("id asc").First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindBySocial(provider, socialID string) (*model.User, error) {
	var user model.User
	if err := r.db.Where("social_provider = ? AND social_id = ?", provider, socialID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) Create(user *model.User) error {
	return r.db.Create(user).Error
}

func (r *UserRepository) Save(user *model.User) error {
	return r.db.Save(user).Error
}

func (r *UserRepository) UpdateByID(userID uint, updates map[string]interface{}) error {
	var user model.User
	if err := r.db.First(&user, userID).Error; err != nil {
		return err
	}
	return r.db.Model(&user).Updates(updates).Error
}

func (r *UserRepository) DeleteByID(userID uint) error {
	tx := r.db.Delete(&model.User{}, userID)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *UserRepository) UsernameExists(username string, excludeUserID *uint) (bool, error) {
	query := r.db.Model(&model.User{}).Where("username = ?", username)
	if excludeUserID != nil {
		query = query.Where("id != ?", *excludeUserID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *UserRepository) TouchLastLogin(userID uint, at time.Time) error {
	return r.db.Model(&model.User{}).Where("id = ?", userID).Update("last_login", at).Error
}

func (r *UserRepository) AdminListUsers(
	keyword string,
	order string,
	offset int,
	limit int,
) ([]model.User, int64, error) {
	var users []model.User
	var total int64

	query := r.db.Model(&model.User{})
	kw := strings.TrimSpace(keyword)
	if kw != "" {
		like := "%" + kw + "%"
		query = query.Where("username LIKE ? OR email LIKE ? OR phone_e164 LIKE ?", like, like, like)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Offset(offset).Limit(limit).Order(order).Find(&users).Error; err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

func (r *UserRepository) CountStats(now time.Time) (*UserCounts, error) {
	counts := &UserCounts{ByProvider: map[string]int64{}}

	count := func(dst *int64, where string, args ...interface{}) error {
		query := r.db.Model(&model.User{})
		if where != "" {
			query = query.Where(where, args...)
		}
		return query.Count(dst).Error
	}

	steps := []struct {
		dst   *int64
		where string
		args  []interface{}
	}{
		{&counts.Total, "", nil},
		{&counts.Active, "is_active = ?", []interface{}{true}},
		{&counts.Admins, "is_admin = ?", []interface{}{true}},
		{&counts.Social, "social_provider IS NOT NULL AND social_provider != ''", nil},
		{&counts.WithPhone, "phone_e164 IS NOT NULL AND phone_e164 != ''", nil},
		{&counts.NewLast7d, "created_at >= ?", []interface{}{now.Add(-7 * 24 * time.Hour)}},
		{&counts.LoginsLast, "last_login >= ?", []interface{}{now.Add(-24 * time.Hour)}},
	}
	for _, step := range steps {
		if err := count(step.dst, step.where, step.args...); err != nil {
			return nil, err
		}
	}

	var rows []struct {
		SocialProvider string
		Total          int64
	}
	err := r.db.Model(&model.User{}).
		Select("social_provider, count(*) as total").
		Where("social_provider IS NOT NULL AND social_provider != ''").
		Group("social_provider").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		counts.ByProvider[row.SocialProvider] = row.Total
	}

	return counts, nil
}
