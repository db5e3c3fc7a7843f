package model

import (
	"errors"
	"fmt"
)

// ErrorKind 错误分类
type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindValidation
	KindNotFound
	KindConflict
	KindUnauthorized
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindUnauthorized:
		return "unauthorized"
	default:
		return "internal"
	}
}

// AppError 业务错误，由 HandleError 转换为 problem 文档
type AppError struct {
	Kind   ErrorKind
	Detail string
	// Fields 字段路径 -> 错误信息列表，仅用于校验错误
	Fields map[string][]string
	Err    error
}

func (e *AppError) Error() string {
	switch {
	case e.Err != nil && e.Detail != "":
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Detail, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	case len(e.Fields) > 0:
		return fmt.Sprintf("%s: %v", e.Kind, e.Fields)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewValidationError(fields map[string][]string) *AppError {
	return &AppError{Kind: KindValidation, Fields: fields}
}

// NewFieldError 单个字段的校验错误
func NewFieldError(path, message string) *AppError {
	return NewValidationError(map[string][]string{path: {message}})
}

func NewNotFoundError(detail string) *AppError {
	return &AppError{Kind: KindNotFound, Detail: detail}
}

func NewConflictError(detail string) *AppError {
	return &AppError{Kind: KindConflict, Detail: detail}
}

func NewUnauthorizedError(detail string) *AppError {
	return &AppError{Kind: KindUnauthorized, Detail: detail}
}

// WrapInternal 包装未预期的存储或运行时错误，已是 AppError 的原样返回
func WrapInternal(err error) error {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return err
	}
	return &AppError{Kind: KindInternal, Err: err}
}

// KindOf 返回错误分类，非 AppError 视为内部错误
func KindOf(err error) ErrorKind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}
