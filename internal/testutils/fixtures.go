package testutils

import (
	"testing"
	"time"

	"github.com/Yersat/chatcode/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// CreateUser inserts an active local user with the given password
// (bcrypt MinCost to keep tests fast). Mutate the returned row via opts.
func CreateUser(t *testing.T, gdb *gorm.DB, username, password string, opts ...func(*model.User)) *model.User {
	t.Helper()

	now := time.Now().UTC()
	u := &model.User{
		Username:  username,
		IsActive:  true,
		CreatedAt: &now,
	}
	if password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
		if err != nil {
			t.Fatalf("hash password: %v", err)
		}
		u.PasswordHash = string(hashed)
	}
	for _, opt := range opts {
		opt(u)
	}
	if err := gdb.Create(u).Error; err != nil {
		t.Fatalf("create user %q: %v", username, err)
	}
	return u
}

// StrPtr returns a pointer to s.
func StrPtr(s string) *string {
	return &s
}
