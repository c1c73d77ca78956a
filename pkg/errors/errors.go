package errors

import (
	"errors"
	"strings"
)

// ErrMissingParams 必填参数缺失
var ErrMissingParams = errors.New("缺少必要参数")

// ValidationError 请求校验失败，Fields 为缺失或非法的字段名（JSON 名）
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrMissingParams.Error()
	}
	return ErrMissingParams.Error() + ": " + strings.Join(e.Fields, ", ")
}

// Unwrap 使 errors.Is(err, ErrMissingParams) 成立
func (e *ValidationError) Unwrap() error { return ErrMissingParams }

// NewValidationError 创建 ValidationError
func NewValidationError(fields ...string) *ValidationError {
	return &ValidationError{Fields: fields}
}

// IsValidation 判断错误是否为校验错误
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
