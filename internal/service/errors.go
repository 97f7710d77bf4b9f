package service

import (
	"errors"
	"net/http"
)

var (
	ErrParamInvalid = errors.New("参数错误")
	ErrPostNotFound = errors.New("帖子不存在")
	ErrUserNotFound = errors.New("用户不存在")
	UnExpectedError = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid: http.StatusBadRequest,
	ErrPostNotFound: http.StatusNotFound,
	ErrUserNotFound: http.StatusNotFound,
	UnExpectedError: http.StatusInternalServerError,
}
