package model

// 字段类型
const (
	FieldTypeText     = "text"
	FieldTypeTextarea = "textarea"
	FieldTypeNumber   = "number"
	FieldTypeEmail    = "email"
	FieldTypeURL      = "url"
	FieldTypePhone    = "phone"
	FieldTypeDate     = "date"
	FieldTypeTime     = "time"
	FieldTypeDatetime = "datetime"
	FieldTypeSelect   = "select"
	FieldTypeRadio    = "radio"
	FieldTypeCheckbox = "checkbox"
)

// FieldTypes 支持的全部字段类型
var FieldTypes = []string{
	FieldTypeText, FieldTypeTextarea, FieldTypeNumber, FieldTypeEmail,
	FieldTypeURL, FieldTypePhone, FieldTypeDate, FieldTypeTime,
	FieldTypeDatetime, FieldTypeSelect, FieldTypeRadio, FieldTypeCheckbox,
}

// FormField 表单字段，key 在同一表单内唯一
type FormField struct {
	ID       string `json:"id" gorm:"primaryKey;type:varchar(36)"`
	FormID   string `json:"formId" gorm:"type:varchar(36);not null;uniqueIndex:ux_form_fields_form_key,priority:1"`
	Key      string `json:"key" gorm:"column:field_key;type:varchar(128);not null;uniqueIndex:ux_form_fields_form_key,priority:2"`
	Label    string `json:"label" gorm:"type:varchar(256);not null"`
	Type     string `json:"type" gorm:"type:varchar(64);not null;default:text"`
	Required bool   `json:"required" gorm:"not null;default:false"`
	Order    int    `json:"order" gorm:"column:sort_order;not null;default:0"`

	Form *Form `json:"-" gorm:"foreignKey:FormID;constraint:OnDelete:RESTRICT"`
}

func (FormField) TableName() string {
	return "form_fields"
}

// CreateFieldRequest 创建字段请求
type CreateFieldRequest struct {
	Key      string `json:"key" validate:"notblank,max=128"`
	Label    string `json:"label" validate:"notblank,max=256"`
	Type     string `json:"type" validate:"notblank,max=64,fieldtype"`
	Required bool   `json:"required"`
	Order    int    `json:"order" validate:"gte=0"`
}

// UpdateFieldRequest 更新字段请求，空白字符串视为未提供
type UpdateFieldRequest struct {
	Key      *string `json:"key" validate:"omitempty,max=128"`
	Label    *string `json:"label" validate:"omitempty,max=256"`
	Type     *string `json:"type" validate:"omitempty,max=64,fieldtype"`
	Required *bool   `json:"required"`
	Order    *int    `json:"order" validate:"omitempty,gte=0"`
}

// ListFieldsQuery 字段列表查询参数
type ListFieldsQuery struct {
	TenantID string `form:"tenantId" json:"tenantId" validate:"notblank,max=128"`
	Q        string `form:"q" json:"q"`
	Sort     string `form:"sort" json:"sort" validate:"omitempty,oneof=order key"`
	Order    string `form:"order" json:"order" validate:"omitempty,oneof=asc desc"`
	Page     int    `form:"page" json:"page"`
	PageSize int    `form:"pageSize" json:"pageSize"`
}
