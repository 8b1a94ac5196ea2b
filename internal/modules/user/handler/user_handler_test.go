package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Yersat/chatcode/internal/testutils"

	"github.com/gin-gonic/gin"
)

// 测试内容：验证获取资料与修改设置接口。
func TestUserHandlers_ProfileAndSettings(t *testing.T) {
	gdb := setupTestDB(t)
	alice := testutils.CreateUser(t, gdb, "alice", "pw")

	r := gin.New()
	r.Use(asUser(alice.ID, false))
	r.GET("/profile", testHandler.GetProfile)
	r.PATCH("/settings", testHandler.UpdateSettings)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/profile", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("期望 200，实际为 %d", w.Code)
	}
	if bytes.Contains(w.Body.Bytes(), []byte("password")) {
		t.Fatalf("资料响应不应包含密码字段: %s", w.Body.String())
	}

	body, _ := json.Marshal(gin.H{"phone": "+77011234567", "preset": "Hi"})
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/settings", bytes.NewReader(body)))
	if w.Code != http.StatusOK {
		t.Fatalf("期望 200，实际为 %d: %s", w.Code, w.Body.String())
	}

	body, _ = json.Marshal(gin.H{"phone": "nope"})
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/settings", bytes.NewReader(body)))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("期望 400，实际为 %d", w.Code)
	}
}

// 测试内容：验证未经认证访问资料返回 401。
func TestUserHandlers_RequiresUser(t *testing.T) {
	setupTestDB(t)
	r := gin.New()
	r.GET("/profile", testHandler.GetProfile)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/profile", nil))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("期望 401，实际为 %d", w.Code)
	}
}
