package app

import (
	"github.com/fisker/biteform-backend/internal/service"
	"github.com/fisker/biteform-backend/pkg/config"
)

// Services 所有服务
type Services struct {
	Auth       *service.AuthService
	Form       *service.FormService
	Field      *service.FieldService
	Submission *service.SubmissionService
	Response   *service.ResponseService
}

// InitializeServices 初始化所有服务
func InitializeServices(repos *Repositories, cfg *config.Config) *Services {
	return &Services{
		Auth:       service.NewAuthService(cfg.Security.JWTSecret, cfg.App.Name),
		Form:       service.NewFormService(repos.Store),
		Field:      service.NewFieldService(repos.Store),
		Submission: service.NewSubmissionService(repos.Store),
		Response:   service.NewResponseService(repos.Store),
	}
}
