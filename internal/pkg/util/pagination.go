package util

import "strconv"

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 50
)

// ParseIntOr 宽松解析整数，不合法时回退默认值
func ParseIntOr(raw string, def int) int {
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}

// ClampPage 页码下限 1
func ClampPage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

// ClampLimit 每页条数限制在 [1, MaxLimit]
func ClampLimit(limit int) int {
	if limit < 1 {
		return 1
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}
