package repository

import (
	"context"
	"strings"

	"github.com/fisker/biteform-backend/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FormRepository struct {
	db *gorm.DB
}

func NewFormRepository(db *gorm.DB) *FormRepository {
	return &FormRepository{db: db}
}

// FormFilter 表单列表条件
type FormFilter struct {
	TenantID string
	Q        string
	SortBy   string // name / createdAt
	Desc     bool
	Page     Page
}

// Create 创建表单
func (r *FormRepository) Create(ctx context.Context, form *model.Form) error {
	return r.db.WithContext(ctx).Create(form).Error
}

// Update 更新表单名称和描述
func (r *FormRepository) Update(ctx context.Context, form *model.Form) error {
	return r.db.WithContext(ctx).Model(form).
		Select("name", "description").
		Updates(form).Error
}

// DeleteCascade 依次删除回答、提交、字段和表单，需在事务中调用
func (r *FormRepository) DeleteCascade(ctx context.Context, formID string) error {
	db := r.db.WithContext(ctx)

	submissionIDs := db.Model(&model.FormSubmission{}).Select("id").Where("form_id = ?", formID)
	if err := db.Where("submission_id IN (?)", submissionIDs).Delete(&model.FormResponse{}).Error; err != nil {
		return err
	}
	if err := db.Where("form_id = ?", formID).Delete(&model.FormSubmission{}).Error; err != nil {
		return err
	}
	if err := db.Where("form_id = ?", formID).Delete(&model.FormField{}).Error; err != nil {
		return err
	}
	return db.Where("id = ?", formID).Delete(&model.Form{}).Error
}

// List 按租户分页查询表单
func (r *FormRepository) List(ctx context.Context, filter FormFilter) ([]model.Form, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.Form{}).Where("tenant_id = ?", filter.TenantID)
	if strings.TrimSpace(filter.Q) != "" {
		like := containsPattern(filter.Q)
		query = query.Where("(LOWER(name) LIKE ? OR LOWER(COALESCE(description, '')) LIKE ?)", like, like)
	}

	var order []clause.OrderByColumn
	switch filter.SortBy {
	case "name":
		order = append(order,
			orderColumn("", "name", filter.Desc),
			orderColumn("", "created_at", true))
	default:
		order = append(order, orderColumn("", "created_at", filter.Desc))
	}
	order = append(order, orderColumn("", "id", false))

	var forms []model.Form
	total, err := paginate(query, filter.Page, order, &forms)
	return forms, total, err
}
