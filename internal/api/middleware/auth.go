package middleware

import (
	"strings"

	"github.com/fisker/biteform-backend/internal/model"
	"github.com/fisker/biteform-backend/internal/service/auth"
	"github.com/gin-gonic/gin"
)

// 上下文中的认证信息
const (
	ContextSubject = "subject"
	ContextEmail   = "email"
	ContextName    = "name"
)

// AuthMiddleware JWT认证中间件，required 为 false 时未携带 Token 的请求直接放行
func AuthMiddleware(authService *auth.AuthService, required bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			if required {
				model.HandleError(c, model.NewUnauthorizedError("missing Authorization header"))
				return
			}
			c.Next()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			model.HandleError(c, model.NewUnauthorizedError("Authorization header must use the Bearer scheme"))
			return
		}

		claims, err := authService.ValidateToken(tokenString)
		if err != nil {
			model.HandleError(c, model.NewUnauthorizedError("invalid or expired token"))
			return
		}

		c.Set(ContextSubject, claims.Subject)
		c.Set(ContextEmail, claims.Email)
		c.Set(ContextName, claims.Name)
		c.Next()
	}
}
