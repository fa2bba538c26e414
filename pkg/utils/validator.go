package utils

import (
	"errors"
	"net/url"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var (
	ErrInvalidDateFormat = errors.New("日期格式无效，请使用 YYYY-MM-DD 或类似格式")
)

// IsNumeric 检查字符串是否只包含数字
func IsNumeric(s string) bool {
	if s == "" {
		return false // 空字符串不视为数字
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// NormalizeName 规范化名称：NFKC 归一（全角转半角等）并去除首尾空白。
// 管理员、角色、机房等唯一名称在入库与查询前都经过该函数。
func NormalizeName(s string) string {
	return strings.TrimSpace(norm.NFKC.String(s))
}

// ParseDate 解析日期字符串，支持多种常见格式。
// 支持 YYYY-MM-DD, YYYY/MM/DD, YYYY-M-D, YYYY/M/D 等及其变体。
func ParseDate(dateStr string) (time.Time, error) {
	trimmedDateStr := strings.TrimSpace(dateStr)
	if trimmedDateStr == "" {
		return time.Time{}, ErrInvalidDateFormat
	}

	normalizedDateStr := strings.ReplaceAll(trimmedDateStr, "/", "-")

	dateLayouts := []string{
		"2006-01-02",
		"2006-1-2",
		"2006-01-2",
		"2006-1-02",
	}

	for _, layout := range dateLayouts {
		if parsedDate, err := time.Parse(layout, normalizedDateStr); err == nil {
			return parsedDate, nil
		}
	}
	return time.Time{}, ErrInvalidDateFormat
}

// SafeRedirect 只接受站内路径作为登录后的跳转目标，其余情况返回 fallback
func SafeRedirect(next, fallback string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return fallback
	}
	u, err := url.Parse(next)
	if err != nil || u.Scheme != "" || u.Host != "" {
		return fallback
	}
	return next
}
