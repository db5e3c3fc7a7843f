package app

import (
	"github.com/fisker/biteform-backend/internal/api/router"
	"github.com/fisker/biteform-backend/pkg/config"
	"github.com/fisker/biteform-backend/pkg/database"
	"github.com/fisker/biteform-backend/pkg/logger"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// App 应用程序上下文
type App struct {
	Config   *config.Config
	Repos    *Repositories
	Services *Services
	Handlers *Handlers
	Router   *gin.Engine
}

// Initialize 初始化应用程序
func Initialize(cfgPath string) (*App, error) {
	// 1. Bootstrap (logger, database)
	cfg, err := Bootstrap(cfgPath)
	if err != nil {
		return nil, err
	}

	return New(cfg, database.DB), nil
}

// New 基于已建立的数据库连接组装仓储、服务、handler 和路由
func New(cfg *config.Config, db *gorm.DB) *App {
	gin.SetMode(cfg.Server.Mode)

	// 2. Initialize repositories
	repos := InitializeRepositories(db)
	logger.Infof("Repositories initialized")

	// 3. Initialize services
	services := InitializeServices(repos, cfg)
	logger.Infof("Services initialized")

	// 4. Initialize handlers
	handlers := InitializeHandlers(db, services, cfg)
	logger.Infof("Handlers initialized")

	r := router.Setup(router.Handlers{
		Form:       handlers.Form,
		Field:      handlers.Field,
		Submission: handlers.Submission,
		Response:   handlers.Response,
		System:     handlers.System,
	}, services.Auth, cfg.Security.RequireAuth)

	return &App{
		Config:   cfg,
		Repos:    repos,
		Services: services,
		Handlers: handlers,
		Router:   r,
	}
}
