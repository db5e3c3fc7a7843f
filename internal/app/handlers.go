package app

import (
	"github.com/fisker/biteform-backend/internal/api/handler"
	"github.com/fisker/biteform-backend/pkg/config"
	"gorm.io/gorm"
)

// Handlers 所有 handler
type Handlers struct {
	Form       *handler.FormHandler
	Field      *handler.FieldHandler
	Submission *handler.SubmissionHandler
	Response   *handler.ResponseHandler
	System     *handler.SystemHandler
}

// InitializeHandlers 初始化所有 handler
func InitializeHandlers(db *gorm.DB, services *Services, cfg *config.Config) *Handlers {
	return &Handlers{
		Form:       handler.NewFormHandler(services.Form),
		Field:      handler.NewFieldHandler(services.Field),
		Submission: handler.NewSubmissionHandler(services.Submission),
		Response:   handler.NewResponseHandler(services.Response),
		System:     handler.NewSystemHandler(db, cfg.App),
	}
}
