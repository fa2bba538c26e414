package auth

import (
	"context"
	"html/template"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/machine_admin/internal/services"
)

// fakeAuthorizer 按 adminID 返回允许访问的路由规则
type fakeAuthorizer map[int64][]string

func (f fakeAuthorizer) Authorize(_ context.Context, adminID int64, route string) error {
	for _, r := range f[adminID] {
		if r == route {
			return nil
		}
	}
	return services.ErrNotFound
}

// fakeVersions 按 adminID 返回会话版本，未列出的为 0，负数表示管理员已删除
type fakeVersions map[int64]int

func (f fakeVersions) SessionVersion(_ context.Context, adminID int64) (int, error) {
	v := f[adminID]
	if v < 0 {
		return 0, services.ErrNotFound
	}
	return v, nil
}

type testApp struct {
	engine   *gin.Engine
	sessions *SessionManager
	denylist *MemoryDenylist
	versions fakeVersions
}

func newTestApp(policy GatePolicy, authz Authorizer) *testApp {
	gin.SetMode(gin.TestMode)
	app := &testApp{
		engine:   gin.New(),
		sessions: NewSessionManager("test-secret", time.Hour, false),
		denylist: NewMemoryDenylist(),
		versions: fakeVersions{},
	}
	app.engine.SetHTMLTemplate(template.Must(template.New("error.html").Parse("{{.Error.Message}}")))

	protected := app.engine.Group("/", SessionRequired(app.sessions, app.denylist, app.versions))
	protected.GET("/", func(c *gin.Context) { c.String(http.StatusOK, "index") })
	protected.GET("/logout/", func(c *gin.Context) {
		if err := Logout(c, app.sessions, app.denylist); err != nil {
			c.String(http.StatusInternalServerError, err.Error())
			return
		}
		c.String(http.StatusOK, "bye")
	})
	gated := protected.Group("", Gate(policy, authz))
	gated.GET("/machine/list/:page/", func(c *gin.Context) {
		s, _ := CurrentAdmin(c)
		c.String(http.StatusOK, "machines for "+s.Admin)
	})
	gated.GET("/role/list/:page/", func(c *gin.Context) { c.String(http.StatusOK, "roles") })
	return app
}

func (a *testApp) get(t *testing.T, path, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})
	}
	w := httptest.NewRecorder()
	a.engine.ServeHTTP(w, req)
	return w
}

func (a *testApp) login(t *testing.T, adminID int64, name string) string {
	t.Helper()
	token, _, err := a.sessions.Issue(adminID, name, a.versions[adminID])
	require.NoError(t, err)
	return token
}

func TestSessionRequired_RedirectsToLogin(t *testing.T) {
	app := newTestApp(NewGatePolicy(false, nil), fakeAuthorizer{})

	w := app.get(t, "/machine/list/1/", "")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login/?next=%2Fmachine%2Flist%2F1%2F", w.Header().Get("Location"))

	w = app.get(t, "/", "bogus")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login/", w.Header().Get("Location"))
}

func TestSessionRequired_ValidSession(t *testing.T) {
	app := newTestApp(NewGatePolicy(false, nil), fakeAuthorizer{})
	token := app.login(t, 1, "root")

	w := app.get(t, "/machine/list/1/", token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "machines for root", w.Body.String())
}

func TestLogout_RevokesSession(t *testing.T) {
	app := newTestApp(NewGatePolicy(false, nil), fakeAuthorizer{})
	token := app.login(t, 1, "root")

	w := app.get(t, "/logout/", token)
	require.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, SessionCookieName, cookies[0].Name)
	assert.Negative(t, cookies[0].MaxAge)

	// 旧令牌在过期前也不可再用
	w = app.get(t, "/", token)
	assert.Equal(t, http.StatusFound, w.Code)
}

func TestSessionRequired_StaleVersion(t *testing.T) {
	app := newTestApp(NewGatePolicy(false, nil), fakeAuthorizer{})
	app.versions[1] = 2
	token := app.login(t, 1, "root")
	require.Equal(t, http.StatusOK, app.get(t, "/", token).Code)

	// 修改密码后版本递增，之前签发的会话都失效
	app.versions[1] = 3
	w := app.get(t, "/", token)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login/", w.Header().Get("Location"))
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Negative(t, cookies[0].MaxAge)
}

func TestSessionRequired_DeletedAdmin(t *testing.T) {
	app := newTestApp(NewGatePolicy(false, nil), fakeAuthorizer{})
	token := app.login(t, 5, "gone")
	app.versions[5] = -1

	assert.Equal(t, http.StatusFound, app.get(t, "/", token).Code)
}

type failingVersions struct{}

func (failingVersions) SessionVersion(context.Context, int64) (int, error) {
	return 0, assert.AnError
}

func TestSessionRequired_VersionLookupError(t *testing.T) {
	app := newTestApp(NewGatePolicy(false, nil), fakeAuthorizer{})
	token := app.login(t, 1, "root")

	protected := gin.New()
	protected.GET("/", SessionRequired(app.sessions, app.denylist, failingVersions{}), func(c *gin.Context) {
		c.String(http.StatusOK, "index")
	})
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})
	w := httptest.NewRecorder()
	protected.ServeHTTP(w, req)
	assert.Equal(t, http.StatusFound, w.Code)
}

func TestGate_Disabled(t *testing.T) {
	app := newTestApp(NewGatePolicy(false, nil), fakeAuthorizer{})
	token := app.login(t, 2, "bob")

	assert.Equal(t, http.StatusOK, app.get(t, "/role/list/1/", token).Code)
}

func TestGate_Enabled(t *testing.T) {
	app := newTestApp(NewGatePolicy(true, nil), fakeAuthorizer{2: {"/machine/list/:page/"}})
	token := app.login(t, 2, "bob")

	assert.Equal(t, http.StatusOK, app.get(t, "/machine/list/3/", token).Code)

	w := app.get(t, "/role/list/1/", token)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "页面不存在", w.Body.String())

	// 不挂 Gate 的路由不受影响
	assert.Equal(t, http.StatusOK, app.get(t, "/", token).Code)
}

func TestGate_ListedRoutesOnly(t *testing.T) {
	app := newTestApp(NewGatePolicy(false, []string{"/role/list/:page/"}), fakeAuthorizer{})
	token := app.login(t, 2, "bob")

	assert.Equal(t, http.StatusOK, app.get(t, "/machine/list/1/", token).Code)
	assert.Equal(t, http.StatusNotFound, app.get(t, "/role/list/1/", token).Code)
}

type failingAuthorizer struct{}

func (failingAuthorizer) Authorize(context.Context, int64, string) error {
	return assert.AnError
}

func TestGate_AuthorizerError(t *testing.T) {
	app := newTestApp(NewGatePolicy(true, nil), failingAuthorizer{})
	token := app.login(t, 2, "bob")

	assert.Equal(t, http.StatusInternalServerError, app.get(t, "/machine/list/1/", token).Code)
}
