package app

import (
	"github.com/fisker/biteform-backend/internal/repository"
	"gorm.io/gorm"
)

// Repositories 所有仓储
type Repositories struct {
	Store *repository.Store
}

// InitializeRepositories 初始化所有仓储
func InitializeRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Store: repository.NewStore(db),
	}
}
