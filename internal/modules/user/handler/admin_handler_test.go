package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Yersat/chatcode/internal/model"
	"github.com/Yersat/chatcode/internal/testutils"

	"github.com/gin-gonic/gin"
)

// 测试内容：验证管理员用户增删改查的完整流程。
func TestUserManageHandlers_CRUD(t *testing.T) {
	gdb := setupTestDB(t)
	admin := testutils.CreateUser(t, gdb, "root_admin", "pw", func(u *model.User) { u.IsAdmin = true })
	seed := testutils.CreateUser(t, gdb, "seed", "pw")

	r := gin.New()
	r.Use(asUser(admin.ID, true))
	r.GET("/users", testHandler.GetUserList)
	r.GET("/users/:id", testHandler.GetUserDetail)
	r.POST("/users", testHandler.CreateUser)
	r.PATCH("/users/:id", testHandler.UpdateUser)
	r.DELETE("/users/:id", testHandler.DeleteUser)

	// 列表
	w1 := httptest.NewRecorder()
	r.ServeHTTP(w1, httptest.NewRequest(http.MethodGet, "/users?page=1&page_size=10", nil))
	if w1.Code != http.StatusOK {
		t.Fatalf("list 期望 200，实际为 %d body=%s", w1.Code, w1.Body.String())
	}
	var list struct {
		Total int64 `json:"total"`
	}
	_ = json.Unmarshal(w1.Body.Bytes(), &list)
	if list.Total != 2 {
		t.Fatalf("期望 total=2，实际为 %d", list.Total)
	}

	// 详情
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, httptest.NewRequest(http.MethodGet, fmt.Sprintf("/users/%d", seed.ID), nil))
	if w2.Code != http.StatusOK {
		t.Fatalf("detail 期望 200，实际为 %d", w2.Code)
	}

	// 创建
	bodyCreate, _ := json.Marshal(gin.H{"username": "alice_1", "password": "abc12345", "phone": "+77011234567"})
	w3 := httptest.NewRecorder()
	r.ServeHTTP(w3, httptest.NewRequest(http.MethodPost, "/users", bytes.NewReader(bodyCreate)))
	if w3.Code != http.StatusCreated {
		t.Fatalf("create 期望 201，实际为 %d body=%s", w3.Code, w3.Body.String())
	}

	// 更新
	bodyUpdate, _ := json.Marshal(gin.H{"is_active": false})
	w4 := httptest.NewRecorder()
	r.ServeHTTP(w4, httptest.NewRequest(http.MethodPatch, fmt.Sprintf("/users/%d", seed.ID), bytes.NewReader(bodyUpdate)))
	if w4.Code != http.StatusOK {
		t.Fatalf("update 期望 200，实际为 %d body=%s", w4.Code, w4.Body.String())
	}

	// 自我降权
	bodySelf, _ := json.Marshal(gin.H{"is_admin": false})
	w5 := httptest.NewRecorder()
	r.ServeHTTP(w5, httptest.NewRequest(http.MethodPatch, fmt.Sprintf("/users/%d", admin.ID), bytes.NewReader(bodySelf)))
	if w5.Code != http.StatusForbidden {
		t.Fatalf("self demote 期望 403，实际为 %d", w5.Code)
	}

	// 删除管理员
	w6 := httptest.NewRecorder()
	r.ServeHTTP(w6, httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/users/%d", admin.ID), nil))
	if w6.Code != http.StatusForbidden {
		t.Fatalf("delete admin 期望 403，实际为 %d", w6.Code)
	}

	// 删除普通用户
	w7 := httptest.NewRecorder()
	r.ServeHTTP(w7, httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/users/%d", seed.ID), nil))
	if w7.Code != http.StatusOK {
		t.Fatalf("delete 期望 200，实际为 %d", w7.Code)
	}

	w8 := httptest.NewRecorder()
	r.ServeHTTP(w8, httptest.NewRequest(http.MethodGet, fmt.Sprintf("/users/%d", seed.ID), nil))
	if w8.Code != http.StatusNotFound {
		t.Fatalf("deleted detail 期望 404，实际为 %d", w8.Code)
	}
}

// 测试内容：验证非法用户 ID 返回 400。
func TestUserManageHandlers_InvalidID(t *testing.T) {
	setupTestDB(t)
	r := gin.New()
	r.GET("/users/:id", testHandler.GetUserDetail)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users/abc", nil))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("期望 400，实际为 %d", w.Code)
	}
}
