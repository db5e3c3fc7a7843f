package model

import (
	"time"

	"gorm.io/gorm"
)

// Form 租户定义的表单
type Form struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	TenantID    string    `json:"tenantId" gorm:"type:varchar(128);not null;index"`
	Name        string    `json:"name" gorm:"type:varchar(256);not null"`
	Description *string   `json:"description" gorm:"type:varchar(2000)"`
	CreatedAt   time.Time `json:"createdAtUtc" gorm:"not null;index"`
}

func (Form) TableName() string {
	return "forms"
}

func (f *Form) AfterFind(tx *gorm.DB) error {
	f.CreatedAt = f.CreatedAt.UTC()
	return nil
}

// CreateFormRequest 创建表单请求
type CreateFormRequest struct {
	TenantID    string  `json:"tenantId" validate:"notblank,max=128"`
	Name        string  `json:"name" validate:"notblank,max=256"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
}

// UpdateFormRequest 更新表单请求，tenantId 放在请求体中
type UpdateFormRequest = CreateFormRequest

// ListFormsQuery 表单列表查询参数
type ListFormsQuery struct {
	TenantID string `form:"tenantId" json:"tenantId" validate:"notblank,max=128"`
	Q        string `form:"q" json:"q"`
	Sort     string `form:"sort" json:"sort" validate:"omitempty,oneof=name createdAt"`
	Order    string `form:"order" json:"order" validate:"omitempty,oneof=asc desc"`
	Page     int    `form:"page" json:"page"`
	PageSize int    `form:"pageSize" json:"pageSize"`
}

// TenantQuery 仅包含 tenantId 的查询参数
type TenantQuery struct {
	TenantID string `form:"tenantId" json:"tenantId" validate:"notblank,max=128"`
}
