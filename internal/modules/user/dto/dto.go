package dto

// UpdateSettingsRequest 字段为 nil 表示不修改，空字符串表示清空
type UpdateSettingsRequest struct {
	Phone  *string `json:"phone"`
	Preset *string `json:"preset"`
}

type AdminUserListRequest struct {
	Page     int
	PageSize int
	Keyword  string
	Order    string
}

type CreateUserRequest struct {
	Username string  `json:"username" binding:"required"`
	Password string  `json:"password" binding:"required"`
	Phone    *string `json:"phone"`
	Preset   *string `json:"preset"`
	Email    *string `json:"email"`
	IsAdmin  bool    `json:"is_admin"`
}

type UpdateUserRequest struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
	Phone    *string `json:"phone"`
	Preset   *string `json:"preset"`
	Email    *string `json:"email"`
	FullName *string `json:"full_name"`
	IsAdmin  *bool   `json:"is_admin"`
	IsActive *bool   `json:"is_active"`
}
