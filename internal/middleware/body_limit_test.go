package middleware

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Yersat/chatcode/internal/consts"

	"github.com/gin-gonic/gin"
)

func newBodyLimitRouter() *gin.Engine {
	r := gin.New()
	r.POST("/x", BodyLimitMiddleware(testService), func(c *gin.Context) {
		if _, err := io.ReadAll(c.Request.Body); err != nil {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"err": err.Error()})
			return
		}
		c.Status(http.StatusOK)
	})
	return r
}

// 测试内容：验证声明长度超过限制的请求直接返回 413。
func TestBodyLimitMiddleware_RejectsDeclaredLength(t *testing.T) {
	gdb := setupTestDB(t)
	saveSetting(t, gdb, consts.ConfigMaxRequestBodySize, "1")

	payload := bytes.Repeat([]byte("a"), 2*1024*1024)
	req := httptest.NewRequest(http.MethodPost, "/x", bytes.NewReader(payload))
	w := httptest.NewRecorder()
	newBodyLimitRouter().ServeHTTP(w, req)

	if w.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("期望 413，实际为 %d", w.Code)
	}
}

// 测试内容：验证未声明长度的超大请求在读取时被截断。
func TestBodyLimitMiddleware_LimitsUnknownLength(t *testing.T) {
	gdb := setupTestDB(t)
	saveSetting(t, gdb, consts.ConfigMaxRequestBodySize, "1")

	payload := bytes.Repeat([]byte("a"), 2*1024*1024)
	req := httptest.NewRequest(http.MethodPost, "/x", bytes.NewReader(payload))
	req.ContentLength = -1
	w := httptest.NewRecorder()
	newBodyLimitRouter().ServeHTTP(w, req)

	if w.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("期望 413，实际为 %d body=%s", w.Code, w.Body.String())
	}
}

// 测试内容：验证限制内的请求正常放行。
func TestBodyLimitMiddleware_AllowsSmallBody(t *testing.T) {
	_ = setupTestDB(t)

	req := httptest.NewRequest(http.MethodPost, "/x", bytes.NewReader([]byte(`{"a":1}`)))
	w := httptest.NewRecorder()
	newBodyLimitRouter().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("期望 200，实际为 %d", w.Code)
	}
}
