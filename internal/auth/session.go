package auth

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionCookieName 会话 Cookie 名
const SessionCookieName = "admin_session"

// 会话信息在 gin 上下文中的 key
const (
	ContextAdminKey   = "admin"
	ContextAdminIDKey = "admin_id"
	ContextJTIKey     = "jti"
	ContextExpKey     = "exp"
)

const sessionIssuer = "machine_admin"

// ErrInvalidSession 会话缺失、签名错误或已过期
var ErrInvalidSession = errors.New("会话无效")

// Claims 定义了会话 JWT 中存储的自定义声明。
// JTI (ID) 会通过内嵌的 jwt.RegisteredClaims 提供
type Claims struct {
	AdminID int64  `json:"admin_id"`
	Admin   string `json:"admin"`
	Version int    `json:"ver"`
	jwt.RegisteredClaims
}

// Session 当前请求的登录身份
type Session struct {
	AdminID   int64
	Admin     string
	Version   int
	JTI       string
	ExpiresAt time.Time
}

// SessionManager 签发和解析会话 Cookie
type SessionManager struct {
	secret []byte
	ttl    time.Duration
	secure bool
	now    func() time.Time
}

// NewSessionManager 创建一个新的 SessionManager 实例
func NewSessionManager(secret string, ttl time.Duration, secure bool) *SessionManager {
	return &SessionManager{secret: []byte(secret), ttl: ttl, secure: secure, now: time.Now}
}

// TTL 会话有效期
func (m *SessionManager) TTL() time.Duration { return m.ttl }

// Issue 为管理员签发会话令牌，version 为管理员当前的会话版本
func (m *SessionManager) Issue(adminID int64, name string, version int) (string, *Session, error) {
	now := m.now()
	exp := now.Add(m.ttl)
	claims := &Claims{
		AdminID: adminID,
		Admin:   name,
		Version: version,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   name,
			Issuer:    sessionIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", nil, fmt.Errorf("签发会话失败: %w", err)
	}
	return token, &Session{AdminID: adminID, Admin: name, Version: version, JTI: claims.ID, ExpiresAt: exp}, nil
}

// Parse 校验令牌签名与有效期，返回会话信息
func (m *SessionManager) Parse(tokenString string) (*Session, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// 确保token的签名方法是我们期望的 HMAC
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithIssuer(sessionIssuer), jwt.WithExpirationRequired(), jwt.WithTimeFunc(m.now))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSession, err)
	}
	if !token.Valid || claims.ID == "" || claims.AdminID == 0 {
		return nil, ErrInvalidSession
	}
	return &Session{
		AdminID:   claims.AdminID,
		Admin:     claims.Admin,
		Version:   claims.Version,
		JTI:       claims.ID,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// SetCookie 写入会话 Cookie
func (m *SessionManager) SetCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, token, int(m.ttl.Seconds()), "/", "", m.secure, true)
}

// ClearCookie 清除会话 Cookie
func (m *SessionManager) ClearCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, "", -1, "/", "", m.secure, true)
}

// CurrentAdmin 返回 SessionRequired 中间件放入上下文的会话
func CurrentAdmin(c *gin.Context) (*Session, bool) {
	id, ok := c.Get(ContextAdminIDKey)
	if !ok {
		return nil, false
	}
	s := &Session{AdminID: id.(int64), Admin: c.GetString(ContextAdminKey), JTI: c.GetString(ContextJTIKey)}
	if exp, ok := c.Get(ContextExpKey); ok {
		s.ExpiresAt, _ = exp.(time.Time)
	}
	return s, true
}

func setSession(c *gin.Context, s *Session) {
	c.Set(ContextAdminKey, s.Admin)
	c.Set(ContextAdminIDKey, s.AdminID)
	c.Set(ContextJTIKey, s.JTI)
	c.Set(ContextExpKey, s.ExpiresAt)
}
