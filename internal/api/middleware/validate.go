package middleware

import (
	"fmt"
	"net/http"

	"github.com/fisker/biteform-backend/internal/model"
	"github.com/fisker/biteform-backend/pkg/validator"
	"github.com/gin-gonic/gin"
)

// payloadKey 按类型区分，同一路由可同时校验查询参数和请求体
func payloadKey[T any]() string {
	return fmt.Sprintf("payload:%T", (*T)(nil))
}

// ValidateBody 解析 JSON 请求体并校验，成功后通过 Payload 取出
func ValidateBody[T any]() gin.HandlerFunc {
	return func(c *gin.Context) {
		req := new(T)
		if err := c.ShouldBindJSON(req); err != nil {
			model.WriteProblem(c, model.NewProblem(http.StatusBadRequest, "request body is not valid JSON: "+err.Error()))
			return
		}
		validateAndStore(c, req)
	}
}

// ValidateQuery 解析查询参数并校验
func ValidateQuery[T any]() gin.HandlerFunc {
	return func(c *gin.Context) {
		req := new(T)
		if err := c.ShouldBindQuery(req); err != nil {
			model.WriteProblem(c, model.NewProblem(http.StatusBadRequest, "invalid query parameters: "+err.Error()))
			return
		}
		validateAndStore(c, req)
	}
}

func validateAndStore[T any](c *gin.Context, req *T) {
	if err := validator.Struct(req); err != nil {
		model.HandleError(c, err)
		return
	}
	c.Set(payloadKey[T](), req)
	c.Next()
}

// Payload 取出校验通过的请求
func Payload[T any](c *gin.Context) *T {
	if v, ok := c.Get(payloadKey[T]()); ok {
		if req, ok := v.(*T); ok {
			return req
		}
	}
	return new(T)
}
