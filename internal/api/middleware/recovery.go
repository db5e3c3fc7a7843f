package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/fisker/biteform-backend/internal/model"
	"github.com/fisker/biteform-backend/pkg/logger"
	"github.com/gin-gonic/gin"
)

// RecoveryMiddleware 捕获 panic，记录堆栈并返回 500 problem 文档
func RecoveryMiddleware() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		err, ok := recovered.(error)
		if !ok {
			err = fmt.Errorf("%v", recovered)
		}

		fullURL := c.Request.URL.Path
		if c.Request.URL.RawQuery != "" {
			fullURL = fmt.Sprintf("%s?%s", fullURL, c.Request.URL.RawQuery)
		}

		logger.Errorf(
			"Panic recovered: %v\n"+
				"  Request: %s %s\n"+
				"  Client IP: %s\n"+
				"  Subject: %s\n"+
				"  Stack Trace:\n%s",
			err,
			c.Request.Method,
			fullURL,
			c.ClientIP(),
			c.GetString(ContextSubject),
			string(debug.Stack()),
		)

		model.WriteProblem(c, model.NewProblem(http.StatusInternalServerError, ""))
	})
}
