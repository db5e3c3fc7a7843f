package forms

import (
	"errors"
	"strings"

	"github.com/fisker/biteform-backend/internal/model"
	"gorm.io/gorm"
)

const (
	errFormNotFound       = "form not found"
	errFieldNotFound      = "field not found"
	errSubmissionNotFound = "submission not found"
	errResponseNotFound   = "response not found"

	errFieldKeyExists   = "field key already exists for this form"
	errFieldHasResponse = "field has responses"
	errResponseExists   = "response for this field already exists"

	msgInvalidFieldID   = "Invalid fieldId for form"
	msgDuplicateFieldID = "Duplicate fieldId in submission"
)

// translate 将存储层错误转换为业务错误
// notFound 为记录不存在时的描述，conflict 为唯一约束或外键约束冲突时的描述
func translate(err error, notFound, conflict string) error {
	if err == nil {
		return nil
	}

	var appErr *model.AppError
	switch {
	case errors.As(err, &appErr):
		return err
	case errors.Is(err, gorm.ErrRecordNotFound):
		return model.NewNotFoundError(notFound)
	case conflict != "" && (errors.Is(err, gorm.ErrDuplicatedKey) || errors.Is(err, gorm.ErrForeignKeyViolated)):
		return model.NewConflictError(conflict)
	}
	return model.WrapInternal(err)
}

// trimOrNil 去除首尾空白，空白字符串返回 nil
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

// nonBlank 返回去除空白后的值，未提供或空白时 ok 为 false
func nonBlank(s *string) (string, bool) {
	v := trimOrNil(s)
	if v == nil {
		return "", false
	}
	return *v, true
}

// isDesc 解析排序方向，未指定时使用默认值
func isDesc(order string, defaultDesc bool) bool {
	switch order {
	case "asc":
		return false
	case "desc":
		return true
	}
	return defaultDesc
}
