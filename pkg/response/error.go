package response

import (
	"net/http"
)

type BizError struct {
	Code int
	Msg  string
}

func (e *BizError) Error() string {
	return e.Msg
}

func NewError(code int, msg string) *BizError {
	return &BizError{
		Code: code,
		Msg:  msg,
	}
}

// NotFound 目标资源不存在
func NotFound(msg string) *BizError {
	return NewError(http.StatusNotFound, msg)
}

// Conflict 违反业务约束（非法状态流转、重复写入等）
func Conflict(msg string) *BizError {
	return NewError(http.StatusConflict, msg)
}

func Forbidden(msg string) *BizError {
	return NewError(http.StatusForbidden, msg)
}
