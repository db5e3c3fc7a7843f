package repository

import (
	"context"
	"strings"

	"github.com/fisker/biteform-backend/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FieldRepository struct {
	db *gorm.DB
}

func NewFieldRepository(db *gorm.DB) *FieldRepository {
	return &FieldRepository{db: db}
}

// FieldFilter 字段列表条件
type FieldFilter struct {
	FormID string
	Q      string
	SortBy string // order / key
	Desc   bool
	Page   Page
}

// Create 创建字段
func (r *FieldRepository) Create(ctx context.Context, field *model.FormField) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(field).Error
}

// Update 更新字段全部可变属性
func (r *FieldRepository) Update(ctx context.Context, field *model.FormField) error {
	return r.db.WithContext(ctx).Model(field).
		Omit(clause.Associations).
		Select("field_key", "label", "type", "required", "sort_order").
		Updates(field).Error
}

// Delete 删除字段
func (r *FieldRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.FormField{}).Error
}

// CheckKeyExists 检查表单内字段 key 是否已存在
func (r *FieldRepository) CheckKeyExists(ctx context.Context, formID, key, excludeID string) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&model.FormField{}).
		Where("form_id = ? AND field_key = ?", formID, key)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}
	err := query.Count(&count).Error
	return count > 0, err
}

// FindIDsInForm 返回 ids 中属于该表单的字段 ID 集合
func (r *FieldRepository) FindIDsInForm(ctx context.Context, formID string, ids []string) (map[string]bool, error) {
	found := make(map[string]bool, len(ids))
	if len(ids) == 0 {
		return found, nil
	}

	var existing []string
	err := r.db.WithContext(ctx).Model(&model.FormField{}).
		Where("form_id = ? AND id IN ?", formID, ids).
		Pluck("id", &existing).Error
	if err != nil {
		return nil, err
	}
	for _, id := range existing {
		found[id] = true
	}
	return found, nil
}

// List 分页查询表单字段
func (r *FieldRepository) List(ctx context.Context, filter FieldFilter) ([]model.FormField, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.FormField{}).Where("form_id = ?", filter.FormID)
	if strings.TrimSpace(filter.Q) != "" {
		like := containsPattern(filter.Q)
		query = query.Where("(LOWER(field_key) LIKE ? OR LOWER(label) LIKE ?)", like, like)
	}

	var order []clause.OrderByColumn
	switch filter.SortBy {
	case "key":
		order = append(order,
			orderColumn("", "field_key", filter.Desc),
			orderColumn("", "sort_order", false))
	default:
		order = append(order,
			orderColumn("", "sort_order", filter.Desc),
			orderColumn("", "field_key", false))
	}
	order = append(order, orderColumn("", "id", false))

	var fields []model.FormField
	total, err := paginate(query, filter.Page, order, &fields)
	return fields, total, err
}
