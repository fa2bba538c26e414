package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionManager_IssueAndParse(t *testing.T) {
	m := NewSessionManager("test-secret", time.Hour, false)

	token, issued, err := m.Issue(7, "root", 3)
	require.NoError(t, err)
	require.NotEmpty(t, issued.JTI)

	s, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), s.AdminID)
	assert.Equal(t, "root", s.Admin)
	assert.Equal(t, 3, s.Version)
	assert.Equal(t, issued.JTI, s.JTI)
	assert.WithinDuration(t, issued.ExpiresAt, s.ExpiresAt, time.Second)

	// 每次签发的 JTI 不同
	_, again, err := m.Issue(7, "root", 3)
	require.NoError(t, err)
	assert.NotEqual(t, issued.JTI, again.JTI)
}

func TestSessionManager_Parse_WrongSecret(t *testing.T) {
	token, _, err := NewSessionManager("secret-a", time.Hour, false).Issue(1, "root", 0)
	require.NoError(t, err)

	_, err = NewSessionManager("secret-b", time.Hour, false).Parse(token)
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestSessionManager_Parse_Expired(t *testing.T) {
	m := NewSessionManager("test-secret", time.Minute, false)
	m.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	token, _, err := m.Issue(1, "root", 0)
	require.NoError(t, err)

	m.now = time.Now
	_, err = m.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestSessionManager_Parse_Garbage(t *testing.T) {
	m := NewSessionManager("test-secret", time.Hour, false)

	_, err := m.Parse("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestSessionManager_SetCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := NewSessionManager("test-secret", time.Hour, true)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	m.SetCookie(c, "tok")

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, SessionCookieName, cookies[0].Name)
	assert.Equal(t, "tok", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
	assert.True(t, cookies[0].Secure)
	assert.Equal(t, http.SameSiteLaxMode, cookies[0].SameSite)
	assert.Equal(t, 3600, cookies[0].MaxAge)
}

func TestLoginURL(t *testing.T) {
	assert.Equal(t, "/login/", LoginURL(""))
	assert.Equal(t, "/login/", LoginURL("/"))
	assert.Equal(t, "/login/?next=%2Fmachine%2Flist%2F1%2F", LoginURL("/machine/list/1/"))
}
