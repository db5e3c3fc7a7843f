package model

import (
	"time"

	"gorm.io/gorm"
)

// FormSubmission 一次表单提交，tenantId 冗余自所属表单
type FormSubmission struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	FormID      string    `json:"formId" gorm:"type:varchar(36);not null;index"`
	TenantID    string    `json:"tenantId" gorm:"type:varchar(128);not null;index"`
	SubmittedAt time.Time `json:"submittedAtUtc" gorm:"not null;index"`
	SubmittedBy *string   `json:"submittedBy" gorm:"type:varchar(256)"`

	Form      *Form          `json:"-" gorm:"foreignKey:FormID;constraint:OnDelete:RESTRICT"`
	Responses []FormResponse `json:"responses" gorm:"-"`
}

func (FormSubmission) TableName() string {
	return "form_submissions"
}

func (s *FormSubmission) AfterFind(tx *gorm.DB) error {
	s.SubmittedAt = s.SubmittedAt.UTC()
	return nil
}

// CreateSubmissionRequest 创建提交请求，可同时携带各字段的回答
type CreateSubmissionRequest struct {
	SubmittedBy *string                 `json:"submittedBy" validate:"omitempty,max=256"`
	Responses   []SubmissionResponseItem `json:"responses" validate:"dive"`
}

type SubmissionResponseItem struct {
	FieldID string  `json:"fieldId" validate:"notblank"`
	Value   *string `json:"value" validate:"omitempty,max=4000"`
}

// UpdateSubmissionRequest 更新提交请求
type UpdateSubmissionRequest struct {
	SubmittedBy *string `json:"submittedBy" validate:"omitempty,max=256"`
}

// ListSubmissionsQuery 提交列表查询参数，from/to 为闭区间
type ListSubmissionsQuery struct {
	TenantID    string    `form:"tenantId" json:"tenantId" validate:"notblank,max=128"`
	SubmittedBy string    `form:"submittedBy" json:"submittedBy"`
	From        time.Time `form:"from" json:"from" time_format:"2006-01-02T15:04:05Z07:00"`
	To          time.Time `form:"to" json:"to" time_format:"2006-01-02T15:04:05Z07:00"`
	Order       string    `form:"order" json:"order" validate:"omitempty,oneof=asc desc"`
	Page        int       `form:"page" json:"page"`
	PageSize    int       `form:"pageSize" json:"pageSize"`
}
