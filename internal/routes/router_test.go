package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/machine_admin/configs"
	"github.com/machine_admin/internal/auth"
	"github.com/machine_admin/internal/handlers"
	"github.com/machine_admin/internal/models"
	"github.com/machine_admin/internal/repositories"
	"github.com/machine_admin/pkg/db"
	"github.com/machine_admin/pkg/utils"
)

type testServer struct {
	router *gin.Engine
	db     *gorm.DB
}

func newTestServer(t *testing.T, mutate func(*configs.Configuration)) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := configs.Configuration{
		SessionSecret: "test-secret",
		SessionTTL:    time.Hour,
	}
	if mutate != nil {
		mutate(&cfg)
	}
	d := db.OpenTest(t)
	router, err := NewRouter(Options{Config: cfg, DB: d})
	require.NoError(t, err)
	return &testServer{router: router, db: d}
}

// seedAdmin 创建角色（可附带权限规则）与管理员
func (s *testServer) seedAdmin(t *testing.T, name, password string, urls ...string) *models.Admin {
	t.Helper()
	ctx := context.Background()
	var authIDs []int64
	for _, u := range urls {
		a := &models.Auth{Name: u, URL: u}
		require.NoError(t, repositories.NewGormAuthRepository(s.db).Create(ctx, a))
		authIDs = append(authIDs, a.ID)
	}
	role := &models.Role{Name: name + "-role"}
	require.NoError(t, repositories.NewGormRoleRepository(s.db).Create(ctx, role, authIDs))

	hash, err := utils.HashPassword(password)
	require.NoError(t, err)
	admin := &models.Admin{Name: name, Pwd: hash, RoleID: role.ID}
	require.NoError(t, repositories.NewGormAdminRepository(s.db).Create(ctx, admin))
	return admin
}

func (s *testServer) do(t *testing.T, method, target string, form url.Values, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func sessionCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == auth.SessionCookieName {
			return c
		}
	}
	return nil
}

func (s *testServer) login(t *testing.T, name, password string) *http.Cookie {
	t.Helper()
	w := s.do(t, http.MethodPost, "/login/", url.Values{"account": {name}, "pwd": {password}}, nil)
	require.Equal(t, http.StatusFound, w.Code)
	c := sessionCookie(w)
	require.NotNil(t, c)
	return c
}

// addMachine 创建机房、平台，并通过表单添加一台机器
func (s *testServer) addMachine(t *testing.T, c *http.Cookie, name string) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, repositories.NewGormMachineroomRepository(s.db).Create(ctx, &models.CatalogItem{Name: "IDC-A"}))
	require.NoError(t, repositories.NewGormPlatformRepository(s.db).Create(ctx, &models.CatalogItem{Name: "kvm-x"}))

	form := url.Values{
		"name":           {name},
		"cpu":            {"x"},
		"ram":            {"16G"},
		"machineroom_id": {"1"},
		"platform_id":    {"1"},
		"putontime":      {"2024-03-05"},
	}
	w := s.do(t, http.MethodPost, "/machine/add/", form, c)
	require.Equal(t, http.StatusFound, w.Code)
}

func cookieNamed(w *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func (s *testServer) count(t *testing.T, model interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, s.db.Model(model).Count(&n).Error)
	return n
}

func TestRouter_UnauthenticatedRedirectsToLogin(t *testing.T) {
	s := newTestServer(t, nil)

	w := s.do(t, http.MethodGet, "/machine/list/1/", nil, nil)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login/?next=%2Fmachine%2Flist%2F1%2F", w.Header().Get("Location"))

	w = s.do(t, http.MethodGet, "/login/?next=%2Fmachine%2Flist%2F1%2F", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `name="account"`)
}

func TestRouter_LoginRedirectsToNext(t *testing.T) {
	s := newTestServer(t, nil)
	s.seedAdmin(t, "root", "secret123")

	form := url.Values{"account": {"root"}, "pwd": {"secret123"}}
	w := s.do(t, http.MethodPost, "/login/?next=%2Fmachine%2Flist%2F1%2F", form, nil)
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/machine/list/1/", w.Header().Get("Location"))

	c := sessionCookie(w)
	require.NotNil(t, c)
	assert.True(t, c.HttpOnly)
	assert.Equal(t, int64(1), s.count(t, &models.Adminlog{}))

	// 站外地址回落到首页
	w = s.do(t, http.MethodPost, "/login/?next=%2F%2Fevil.com%2F", form, nil)
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	w = s.do(t, http.MethodGet, "/", nil, c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "root")
}

func TestRouter_LoginWrongPassword(t *testing.T) {
	s := newTestServer(t, nil)
	s.seedAdmin(t, "root", "secret123")

	w := s.do(t, http.MethodPost, "/login/", url.Values{"account": {"root"}, "pwd": {"nope"}}, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "账号或密码错误")
	assert.Nil(t, sessionCookie(w))
	assert.Zero(t, s.count(t, &models.Adminlog{}))
}

func TestRouter_LoginRateLimited(t *testing.T) {
	s := newTestServer(t, func(cfg *configs.Configuration) { cfg.LoginRateLimit = 1 })

	form := url.Values{"account": {"root"}, "pwd": {"nope"}}
	assert.Equal(t, http.StatusOK, s.do(t, http.MethodPost, "/login/", form, nil).Code)
	assert.Equal(t, http.StatusTooManyRequests, s.do(t, http.MethodPost, "/login/", form, nil).Code)
}

func TestRouter_LogoutRevokesSession(t *testing.T) {
	s := newTestServer(t, nil)
	s.seedAdmin(t, "root", "secret123")
	c := s.login(t, "root", "secret123")

	w := s.do(t, http.MethodGet, "/logout/", nil, c)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, auth.LoginPath, w.Header().Get("Location"))

	w = s.do(t, http.MethodGet, "/", nil, c)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.True(t, strings.HasPrefix(w.Header().Get("Location"), auth.LoginPath))
}

func TestRouter_MachineAddAndList(t *testing.T) {
	s := newTestServer(t, nil)
	s.seedAdmin(t, "root", "secret123")
	c := s.login(t, "root", "secret123")
	ctx := context.Background()

	room := &models.CatalogItem{Name: "IDC-A"}
	require.NoError(t, repositories.NewGormMachineroomRepository(s.db).Create(ctx, room))
	platform := &models.CatalogItem{Name: "kvm"}
	require.NoError(t, repositories.NewGormPlatformRepository(s.db).Create(ctx, platform))

	w := s.do(t, http.MethodGet, "/machine/add/", nil, c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "IDC-A")

	form := url.Values{
		"name":           {"m1"},
		"cpu":            {"x"},
		"ram":            {"16G"},
		"machineroom_id": {"1"},
		"platform_id":    {"1"},
		"putontime":      {"2024-03-05"},
	}
	w = s.do(t, http.MethodPost, "/machine/add/", form, c)
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/machine/list/1/", w.Header().Get("Location"))

	w = s.do(t, http.MethodGet, "/machine/list/1/", nil, c)
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "m1")
	assert.Contains(t, body, "2024-03-05")

	// 名称重复时重新显示表单
	w = s.do(t, http.MethodPost, "/machine/add/", form, c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "机器名称已经存在")
	assert.Equal(t, int64(1), s.count(t, &models.Machine{}))
}

func TestRouter_MachineDelete(t *testing.T) {
	s := newTestServer(t, nil)
	s.seedAdmin(t, "root", "secret123")
	c := s.login(t, "root", "secret123")
	s.addMachine(t, c, "m1")
	require.Contains(t, s.do(t, http.MethodGet, "/machine/list/1/", nil, c).Body.String(), "m1")

	w := s.do(t, http.MethodGet, "/machine/del/1/", nil, c)
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/machine/list/1/", w.Header().Get("Location"))

	w = s.do(t, http.MethodGet, "/machine/list/1/", nil, c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "m1")
	assert.Zero(t, s.count(t, &models.Machine{}))

	var logs []models.Oplog
	require.NoError(t, s.db.Where("reason LIKE ?", "删除机器%").Find(&logs).Error)
	require.Len(t, logs, 1)
	assert.Contains(t, logs[0].Reason, "m1")

	// 已删除的机器再删返回 404
	assert.Equal(t, http.StatusNotFound, s.do(t, http.MethodGet, "/machine/del/1/", nil, c).Code)
}

func TestRouter_ListAndFormPages(t *testing.T) {
	s := newTestServer(t, nil)
	s.seedAdmin(t, "root", "secret123")
	ctx := context.Background()

	rule := &models.Auth{Name: "machine-list-rule", URL: "/machine/list/:page/"}
	require.NoError(t, repositories.NewGormAuthRepository(s.db).Create(ctx, rule))
	role := &models.Role{Name: "ops-team"}
	require.NoError(t, repositories.NewGormRoleRepository(s.db).Create(ctx, role, []int64{rule.ID}))
	hash, err := utils.HashPassword("alicepass")
	require.NoError(t, err)
	require.NoError(t, repositories.NewGormAdminRepository(s.db).Create(ctx, &models.Admin{Name: "alice", Pwd: hash, RoleID: role.ID}))

	// 登录写入登录日志，添加机器写入操作日志
	c := s.login(t, "root", "secret123")
	s.addMachine(t, c, "m1")

	tests := []struct {
		path string
		want []string
	}{
		{"/admin/add/", []string{`name="role_id"`, "ops-team"}},
		{"/admin/list/1/", []string{"alice", "ops-team"}},
		{"/role/add/", []string{"machine-list-rule"}},
		{"/role/list/1/", []string{"ops-team", "machine-list-rule"}},
		{"/role/edit/" + strconv.FormatInt(role.ID, 10) + "/", []string{`value="ops-team"`, "machine-list-rule"}},
		{"/auth/add/", []string{`name="url"`}},
		{"/auth/list/1/", []string{"machine-list-rule"}},
		{"/auth/edit/" + strconv.FormatInt(rule.ID, 10) + "/", []string{`value="machine-list-rule"`}},
		{"/machineroom/list/1/", []string{"IDC-A"}},
		{"/machineroom/add/", []string{`action="/machineroom/add/"`}},
		{"/machineroom/edit/1/", []string{`value="IDC-A"`}},
		{"/platform/list/1/", []string{"kvm-x"}},
		{"/platform/add/", []string{`action="/platform/add/"`}},
		{"/platform/edit/1/", []string{`value="kvm-x"`}},
		{"/machine/list/1/", []string{"m1", "IDC-A", "kvm-x"}},
		{"/machine/edit/1/", []string{`value="m1"`}},
		{"/oplog/list/1/", []string{"m1", "192.0.2.1"}},
		{"/adminloginlog/list/1/", []string{"root", "192.0.2.1"}},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := s.do(t, http.MethodGet, tt.path, nil, c)
			require.Equal(t, http.StatusOK, w.Code)
			body := w.Body.String()
			for _, want := range tt.want {
				assert.Contains(t, body, want)
			}
		})
	}
}

func TestRouter_PageParameter(t *testing.T) {
	s := newTestServer(t, nil)
	s.seedAdmin(t, "root", "secret123")
	c := s.login(t, "root", "secret123")

	assert.Equal(t, http.StatusOK, s.do(t, http.MethodGet, "/machine/list/9/", nil, c).Code)
	assert.Equal(t, http.StatusNotFound, s.do(t, http.MethodGet, "/machine/list/0/", nil, c).Code)
	assert.Equal(t, http.StatusNotFound, s.do(t, http.MethodGet, "/machine/list/abc/", nil, c).Code)
	assert.Equal(t, http.StatusNotFound, s.do(t, http.MethodGet, "/machine/edit/42/", nil, c).Code)
}

func TestRouter_GateDeniesWithNotFound(t *testing.T) {
	s := newTestServer(t, func(cfg *configs.Configuration) { cfg.AuthzEnabled = true })
	s.seedAdmin(t, "bob", "bobpass1", "/machine/list/:page/")
	c := s.login(t, "bob", "bobpass1")

	assert.Equal(t, http.StatusOK, s.do(t, http.MethodGet, "/machine/list/1/", nil, c).Code)
	assert.Equal(t, http.StatusNotFound, s.do(t, http.MethodGet, "/role/list/1/", nil, c).Code)
	assert.Equal(t, http.StatusNotFound, s.do(t, http.MethodGet, "/machine/add/", nil, c).Code)

	// 首页、改密不做权限校验
	assert.Equal(t, http.StatusOK, s.do(t, http.MethodGet, "/", nil, c).Code)
	assert.Equal(t, http.StatusOK, s.do(t, http.MethodGet, "/pwd/", nil, c).Code)
}

func TestRouter_RoleDeleteInUse(t *testing.T) {
	s := newTestServer(t, nil)
	root := s.seedAdmin(t, "root", "secret123")
	c := s.login(t, "root", "secret123")

	w := s.do(t, http.MethodGet, "/role/del/1/", nil, c)
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/role/list/1/", w.Header().Get("Location"))

	var role models.Role
	require.NoError(t, s.db.First(&role, root.RoleID).Error)
	assert.Zero(t, s.count(t, &models.Oplog{}))
}

func TestRouter_ChangePasswordRevokesSession(t *testing.T) {
	s := newTestServer(t, nil)
	s.seedAdmin(t, "root", "secret123")
	c := s.login(t, "root", "secret123")

	form := url.Values{"old_pwd": {"secret123"}, "new_pwd": {"newpass1"}, "re_pwd": {"newpass1"}}
	w := s.do(t, http.MethodPost, "/pwd/", form, c)
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, auth.LoginPath, w.Header().Get("Location"))

	assert.Equal(t, http.StatusFound, s.do(t, http.MethodGet, "/", nil, c).Code)
	s.login(t, "root", "newpass1")
}

func TestRouter_ChangePasswordEndsOtherSessions(t *testing.T) {
	s := newTestServer(t, nil)
	s.seedAdmin(t, "root", "secret123")
	other := s.login(t, "root", "secret123")
	current := s.login(t, "root", "secret123")
	require.Equal(t, http.StatusOK, s.do(t, http.MethodGet, "/", nil, other).Code)

	form := url.Values{"old_pwd": {"secret123"}, "new_pwd": {"newpass1"}, "re_pwd": {"newpass1"}}
	require.Equal(t, http.StatusFound, s.do(t, http.MethodPost, "/pwd/", form, current).Code)

	// 另一个浏览器中的会话也要重新登录
	w := s.do(t, http.MethodGet, "/machine/list/1/", nil, other)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.True(t, strings.HasPrefix(w.Header().Get("Location"), auth.LoginPath))

	fresh := s.login(t, "root", "newpass1")
	assert.Equal(t, http.StatusOK, s.do(t, http.MethodGet, "/", nil, fresh).Code)
}

func TestRouter_UnconfiguredSecretRejectsForgedSession(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "")
	s := newTestServer(t, func(cfg *configs.Configuration) {
		*cfg = configs.Load(viper.New())
		require.True(t, cfg.GeneratedSecret)
	})
	root := s.seedAdmin(t, "root", "secret123")

	for _, secret := range []string{"mobile", "secret"} {
		token, _, err := auth.NewSessionManager(secret, time.Hour, false).Issue(root.ID, root.Name, 0)
		require.NoError(t, err)
		w := s.do(t, http.MethodGet, "/admin/list/1/", nil, &http.Cookie{Name: auth.SessionCookieName, Value: token})
		assert.Equal(t, http.StatusFound, w.Code, "secret %q", secret)
	}

	c := s.login(t, "root", "secret123")
	assert.Equal(t, http.StatusOK, s.do(t, http.MethodGet, "/admin/list/1/", nil, c).Code)
}

func TestRouter_FlashCookieFollowsCookieSecure(t *testing.T) {
	for _, secure := range []bool{false, true} {
		s := newTestServer(t, func(cfg *configs.Configuration) { cfg.CookieSecure = secure })
		s.seedAdmin(t, "root", "secret123")
		c := s.login(t, "root", "secret123")
		assert.Equal(t, secure, c.Secure)

		// 角色仍被使用，删除失败并写入提示消息
		w := s.do(t, http.MethodGet, "/role/del/1/", nil, c)
		require.Equal(t, http.StatusFound, w.Code)
		flash := cookieNamed(w, handlers.FlashCookieName)
		require.NotNil(t, flash)
		assert.Equal(t, secure, flash.Secure)
		assert.True(t, flash.HttpOnly)
	}
}

func TestRouter_Healthz(t *testing.T) {
	s := newTestServer(t, nil)

	w := s.do(t, http.MethodGet, "/healthz", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestRouter_UnknownRoute(t *testing.T) {
	s := newTestServer(t, nil)

	assert.Equal(t, http.StatusNotFound, s.do(t, http.MethodGet, "/no/such/page/", nil, nil).Code)
}
