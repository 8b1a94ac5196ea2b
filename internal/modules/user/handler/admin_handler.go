package handler

import (
	"net/http"
	"strconv"

	"github.com/Yersat/chatcode/internal/modules/common/httpx"
	moduledto "github.com/Yersat/chatcode/internal/modules/user/dto"

	"github.com/gin-gonic/gin"
)

func parseUserID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return 0, false
	}
	return uint(id), true
}

// GetUserList 获取用户列表
func (h *Handler) GetUserList(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))

	users, total, page, pageSize, err := h.userService.AdminListUsers(moduledto.AdminUserListRequest{
		Page:     page,
		PageSize: pageSize,
		Keyword:  c.Query("keyword"),
		Order:    c.Query("order"),
	})
	if err != nil {
		httpx.WriteServiceError(c, err, "Failed to list users")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":      users,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}

// GetUserDetail 获取指定用户信息
func (h *Handler) GetUserDetail(c *gin.Context) {
	id, ok := parseUserID(c)
	if !ok {
		return
	}

	user, err := h.userService.AdminGetUserDetail(id)
	if err != nil {
		httpx.WriteServiceError(c, err, "Failed to load user")
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": user})
}

// CreateUser 创建用户
func (h *Handler) CreateUser(c *gin.Context) {
	var req moduledto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username and password are required"})
		return
	}

	user, err := h.userService.AdminCreateUser(req)
	if err != nil {
		httpx.WriteServiceError(c, err, "Failed to create user")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "User created", "data": user})
}

// UpdateUser 修改用户信息
func (h *Handler) UpdateUser(c *gin.Context) {
	id, ok := parseUserID(c)
	if !ok {
		return
	}
	actorID, _ := httpx.CurrentUserID(c)

	var req moduledto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	updates, err := h.userService.AdminPrepareUserUpdates(actorID, id, req)
	if err != nil {
		httpx.WriteServiceError(c, err, "Failed to update user")
		return
	}

	if err := h.userService.AdminApplyUserUpdates(id, updates); err != nil {
		httpx.WriteServiceError(c, err, "Failed to update user")
		return
	}

	user, err := h.userService.AdminGetUserDetail(id)
	if err != nil {
		httpx.WriteServiceError(c, err, "Failed to load user")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User updated", "data": user})
}

// DeleteUser 删除用户
func (h *Handler) DeleteUser(c *gin.Context) {
	id, ok := parseUserID(c)
	if !ok {
		return
	}

	if err := h.userService.AdminDeleteUser(id); err != nil {
		httpx.WriteServiceError(c, err, "Failed to delete user")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}
