package model

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/fisker/biteform-backend/pkg/logger"
	"github.com/fisker/biteform-backend/pkg/paging"
	"github.com/gin-gonic/gin"
)

const ProblemContentType = "application/problem+json"

// RFC 9110 状态码章节，作为 problem 文档的 type
var problemTypes = map[int]string{
	http.StatusBadRequest:          "https://tools.ietf.org/html/rfc9110#section-15.5.1",
	http.StatusUnauthorized:        "https://tools.ietf.org/html/rfc9110#section-15.5.2",
	http.StatusNotFound:            "https://tools.ietf.org/html/rfc9110#section-15.5.5",
	http.StatusMethodNotAllowed:    "https://tools.ietf.org/html/rfc9110#section-15.5.6",
	http.StatusConflict:            "https://tools.ietf.org/html/rfc9110#section-15.5.10",
	http.StatusInternalServerError: "https://tools.ietf.org/html/rfc9110#section-15.6.1",
	http.StatusServiceUnavailable:  "https://tools.ietf.org/html/rfc9110#section-15.6.4",
}

// Problem 统一错误响应
type Problem struct {
	Type   string              `json:"type"`
	Title  string              `json:"title"`
	Status int                 `json:"status"`
	Detail string              `json:"detail,omitempty"`
	Errors map[string][]string `json:"errors,omitempty"`
}

func NewProblem(status int, detail string) Problem {
	title := http.StatusText(status)
	if status == http.StatusBadRequest {
		title = "One or more validation errors occurred."
	}
	problemType, ok := problemTypes[status]
	if !ok {
		problemType = "about:blank"
	}
	return Problem{Type: problemType, Title: title, Status: status, Detail: detail}
}

// WriteProblem 输出 problem 文档并中止后续处理
func WriteProblem(c *gin.Context, p Problem) {
	c.Header("Content-Type", ProblemContentType)
	c.AbortWithStatusJSON(p.Status, p)
}

// ProblemFor 将错误映射为 problem 文档，内部错误不暴露细节
func ProblemFor(err error) Problem {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return NewProblem(http.StatusInternalServerError, "")
	}
	switch appErr.Kind {
	case KindValidation:
		p := NewProblem(http.StatusBadRequest, appErr.Detail)
		p.Errors = appErr.Fields
		return p
	case KindNotFound:
		return NewProblem(http.StatusNotFound, appErr.Detail)
	case KindConflict:
		return NewProblem(http.StatusConflict, appErr.Detail)
	case KindUnauthorized:
		return NewProblem(http.StatusUnauthorized, appErr.Detail)
	}
	return NewProblem(http.StatusInternalServerError, "")
}

// HandleError 统一错误处理函数，记录日志并返回 problem 文档
func HandleError(c *gin.Context, err error, context ...string) {
	problem := ProblemFor(err)

	errorMsg := err.Error()
	if len(context) > 0 {
		errorMsg = fmt.Sprintf("%s: %v", context[0], err)
	}

	fullURL := c.Request.URL.Path
	if c.Request.URL.RawQuery != "" {
		fullURL = fmt.Sprintf("%s?%s", fullURL, c.Request.URL.RawQuery)
	}

	if problem.Status >= http.StatusInternalServerError {
		logger.Errorf(
			"Request error [%d]: %v\n"+
				"  Request: %s %s\n"+
				"  Client IP: %s\n"+
				"  User-Agent: %s\n"+
				"  Subject: %s",
			problem.Status,
			errorMsg,
			c.Request.Method,
			fullURL,
			c.ClientIP(),
			c.Request.UserAgent(),
			c.GetString("subject"),
		)
	} else {
		logger.Debugf("Request rejected [%d]: %v (%s %s)", problem.Status, errorMsg, c.Request.Method, fullURL)
	}

	WriteProblem(c, problem)
}

// PagedResult 分页响应
type PagedResult[T any] struct {
	Items      []T   `json:"items"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	TotalPages int   `json:"totalPages"`
}

func NewPagedResult[T any](items []T, total int64, page, pageSize int) PagedResult[T] {
	if items == nil {
		items = []T{}
	}
	return PagedResult[T]{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: paging.TotalPages(total, pageSize),
	}
}
