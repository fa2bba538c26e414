package middleware

import (
	"html/template"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.SetHTMLTemplate(template.Must(template.New("error.html").Parse("{{.Error.Message}}")))
	r.Use(handlers...)
	r.GET("/ok", func(c *gin.Context) { c.String(http.StatusOK, GetRequestID(c)) })
	r.GET("/panic", func(c *gin.Context) { panic("boom") })
	return r
}

func serve(r http.Handler, path, remoteAddr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if remoteAddr != "" {
		req.RemoteAddr = remoteAddr
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimitByIP(t *testing.T) {
	r := newEngine(RateLimitByIP(2))

	assert.Equal(t, http.StatusOK, serve(r, "/ok", "192.0.2.1:1000").Code)
	assert.Equal(t, http.StatusOK, serve(r, "/ok", "192.0.2.1:1001").Code)
	assert.Equal(t, http.StatusTooManyRequests, serve(r, "/ok", "192.0.2.1:1002").Code)

	// 不同 IP 各自计数
	assert.Equal(t, http.StatusOK, serve(r, "/ok", "192.0.2.2:1000").Code)
}

func TestRateLimitByIP_Disabled(t *testing.T) {
	r := newEngine(RateLimitByIP(0))

	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, serve(r, "/ok", "192.0.2.1:1000").Code)
	}
}

func TestRequestID(t *testing.T) {
	r := newEngine(RequestID())

	w := serve(r, "/ok", "")
	id := w.Header().Get(RequestIDHeader)
	require.NotEmpty(t, id)
	assert.Equal(t, id, w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}

func TestRecovery(t *testing.T) {
	r := newEngine(Recovery(), Logger(), Metrics())

	w := serve(r, "/panic", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "服务器内部错误", w.Body.String())

	assert.Equal(t, http.StatusOK, serve(r, "/ok", "").Code)
}
