package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestLoginRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(LoginRateLimit(2, time.Minute))
	router.POST("/login", func(c *gin.Context) {
		c.String(200, "ok")
	})

	doReq := func(ip string) *httptest.ResponseRecorder {
		req := httptest.NewRequest("POST", "/login", nil)
		req.RemoteAddr = ip + ":12345"
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, 200, doReq("192.168.1.1").Code)
	assert.Equal(t, 200, doReq("192.168.1.1").Code)

	w3 := doReq("192.168.1.1")
	assert.Equal(t, http.StatusTooManyRequests, w3.Code)
	assert.Contains(t, w3.Body.String(), "频繁")
	assert.NotEmpty(t, w3.Header().Get("Retry-After"))

	// 不同 IP 互不影响
	assert.Equal(t, 200, doReq("192.168.1.2").Code)
}

func TestSlidingWindow(t *testing.T) {
	w := NewSlidingWindow(2, time.Minute)
	t0 := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	ok, _ := w.Allow("ip", t0)
	assert.True(t, ok)
	ok, _ = w.Allow("ip", t0.Add(10*time.Second))
	assert.True(t, ok)

	ok, retry := w.Allow("ip", t0.Add(20*time.Second))
	assert.False(t, ok)
	assert.Equal(t, 40*time.Second, retry)

	// 第一次尝试滑出窗口后恢复
	ok, _ = w.Allow("ip", t0.Add(61*time.Second))
	assert.True(t, ok)

	w.Sweep(t0.Add(10 * time.Minute))
	assert.Empty(t, w.hits)
}
