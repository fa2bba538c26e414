package services

import (
	"errors"
	"sort"
	"strings"

	"gorm.io/gorm"

	"github.com/machine_admin/internal/repositories"
)

// ErrInvalidCredentials 用户名或密码错误，两种情况返回同一错误
var ErrInvalidCredentials = errors.New("账号或密码错误")

// ErrNotFound 记录不存在；权限校验失败也返回该错误
var ErrNotFound = errors.New("记录未找到")

// ErrRoleInUse 角色仍被管理员引用，拒绝删除
var ErrRoleInUse = errors.New("该角色仍被管理员使用，无法删除")

// ErrCatalogInUse 机房/平台仍被机器引用，拒绝删除
var ErrCatalogInUse = errors.New("仍有机器引用该记录，无法删除")

// ValidationError 表单字段级校验错误，Fields 的 key 为表单字段名
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError 创建只含一个字段错误的 ValidationError
func NewValidationError(field, msg string) *ValidationError {
	v := &ValidationError{}
	v.Add(field, msg)
	return v
}

// Add 记录字段错误，同一字段只保留第一条
func (e *ValidationError) Add(field, msg string) {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	if _, ok := e.Fields[field]; !ok {
		e.Fields[field] = msg
	}
}

// OrNil 没有字段错误时返回 nil
func (e *ValidationError) OrNil() error {
	if e == nil || len(e.Fields) == 0 {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "表单校验失败: " + strings.Join(parts, "; ")
}

// mapNotFound 把仓库层的未找到错误转为服务层错误
func mapNotFound(err error) error {
	if errors.Is(err, repositories.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// isUniqueViolation 判断是否为唯一约束冲突，依赖 gorm.Config.TranslateError
func isUniqueViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// normalizeText 去掉首尾空白
func normalizeText(s string) string {
	return strings.TrimSpace(s)
}
