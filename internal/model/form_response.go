package model

import "encoding/json"

// FormResponse 某次提交中某个字段的回答，(submissionId, fieldId) 唯一
type FormResponse struct {
	ID           string  `json:"id" gorm:"primaryKey;type:varchar(36)"`
	SubmissionID string  `json:"submissionId" gorm:"type:varchar(36);not null;uniqueIndex:ux_form_responses_submission_field,priority:1"`
	FieldID      string  `json:"fieldId" gorm:"type:varchar(36);not null;index;uniqueIndex:ux_form_responses_submission_field,priority:2"`
	Value        *string `json:"value" gorm:"type:varchar(4000)"`

	Submission *FormSubmission `json:"-" gorm:"foreignKey:SubmissionID;constraint:OnDelete:RESTRICT"`
	Field      *FormField      `json:"-" gorm:"foreignKey:FieldID;constraint:OnDelete:RESTRICT"`
}

func (FormResponse) TableName() string {
	return "form_responses"
}

// MarshalJSON 空值输出为 ""
func (r FormResponse) MarshalJSON() ([]byte, error) {
	type plain FormResponse
	value := ""
	if r.Value != nil {
		value = *r.Value
	}
	return json.Marshal(struct {
		plain
		Value string `json:"value"`
	}{plain(r), value})
}

// CreateResponseRequest 在已有提交上追加回答
type CreateResponseRequest struct {
	FieldID string  `json:"fieldId" validate:"notblank"`
	Value   *string `json:"value" validate:"omitempty,max=4000"`
}

// UpdateResponseRequest 更新回答
type UpdateResponseRequest struct {
	Value *string `json:"value" validate:"omitempty,max=4000"`
}

// ListResponsesQuery 回答列表查询参数
type ListResponsesQuery struct {
	TenantID string `form:"tenantId" json:"tenantId" validate:"notblank,max=128"`
	Page     int    `form:"page" json:"page"`
	PageSize int    `form:"pageSize" json:"pageSize"`
}
