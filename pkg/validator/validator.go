// Package validator 基于 go-playground/validator 的请求校验，错误按 json 路径分组
package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/fisker/biteform-backend/internal/model"
	"github.com/go-playground/validator/v10"
)

var (
	once     sync.Once
	instance *validator.Validate
)

// Instance 返回全局校验器
func Instance() *validator.Validate {
	once.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())

		// 使用 json tag 作为字段名，便于返回 responses[0].fieldId 这样的路径
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return fld.Name
			}
			return name
		})

		_ = v.RegisterValidation("notblank", notBlank)
		_ = v.RegisterValidation("fieldtype", fieldType)
		instance = v
	})
	return instance
}

// notBlank 去除空白后不能为空
func notBlank(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return !field.IsZero()
	}
	return strings.TrimSpace(field.String()) != ""
}

// fieldType 空白交给 notblank 处理，其余必须是已知字段类型
func fieldType(fl validator.FieldLevel) bool {
	value := strings.ToLower(strings.TrimSpace(fl.Field().String()))
	if value == "" {
		return true
	}
	for _, t := range model.FieldTypes {
		if t == value {
			return true
		}
	}
	return false
}

// Struct 校验结构体，失败时返回 model.KindValidation 错误
func Struct(v interface{}) error {
	err := Instance().Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return model.WrapInternal(err)
	}

	fields := make(map[string][]string)
	for _, fe := range verrs {
		path := fieldPath(fe)
		fields[path] = append(fields[path], message(fe))
	}
	return model.NewValidationError(fields)
}

// fieldPath 去掉顶层结构体名，CreateSubmissionRequest.responses[0].fieldId -> responses[0].fieldId
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return fmt.Sprintf("'%s' must not be empty.", fe.Field())
	case "max":
		return fmt.Sprintf("'%s' must be %s characters or fewer.", fe.Field(), fe.Param())
	case "gte", "min":
		return fmt.Sprintf("'%s' must be greater than or equal to %s.", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("'%s' must be one of: %s.", fe.Field(), strings.ReplaceAll(fe.Param(), " ", ", "))
	case "fieldtype":
		return fmt.Sprintf("'%s' must be one of: %s.", fe.Field(), strings.Join(model.FieldTypes, ", "))
	default:
		return fmt.Sprintf("'%s' is invalid.", fe.Field())
	}
}
