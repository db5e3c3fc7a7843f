package system

import (
	"net/http"

	"github.com/fisker/biteform-backend/internal/api/middleware"
	"github.com/fisker/biteform-backend/internal/model"
	"github.com/fisker/biteform-backend/pkg/config"
	"github.com/fisker/biteform-backend/pkg/database"
	"github.com/fisker/biteform-backend/pkg/logger"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type SystemHandler struct {
	db  *gorm.DB
	app config.AppConfig
}

func NewSystemHandler(db *gorm.DB, app config.AppConfig) *SystemHandler {
	return &SystemHandler{db: db, app: app}
}

// Health 健康检查，数据库不可用时返回 503
// @Router /health [get]
func (h *SystemHandler) Health(c *gin.Context) {
	if err := database.Ping(c.Request.Context(), h.db); err != nil {
		logger.Warnf("Health check failed: %v", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Version 服务名称和版本
// @Router /version [get]
func (h *SystemHandler) Version(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":    h.app.Name,
		"version": h.app.Version,
	})
}

// Me 当前认证用户
// @Router /api/v1/me [get]
func (h *SystemHandler) Me(c *gin.Context) {
	sub := c.GetString(middleware.ContextSubject)
	if sub == "" {
		model.HandleError(c, model.NewUnauthorizedError("authentication required"))
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"sub":   sub,
		"email": c.GetString(middleware.ContextEmail),
		"name":  c.GetString(middleware.ContextName),
	})
}
