package repository

import (
	"context"

	"github.com/fisker/biteform-backend/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ResponseRepository struct {
	db *gorm.DB
}

func NewResponseRepository(db *gorm.DB) *ResponseRepository {
	return &ResponseRepository{db: db}
}

// 回答按字段顺序排列
var responseOrder = []clause.OrderByColumn{
	orderColumn("form_fields", "sort_order", false),
	orderColumn("form_fields", "field_key", false),
	orderColumn("form_responses", "id", false),
}

func (r *ResponseRepository) bySubmission(ctx context.Context, submissionID string) *gorm.DB {
	return r.db.WithContext(ctx).Model(&model.FormResponse{}).
		Joins("JOIN form_fields ON form_fields.id = form_responses.field_id").
		Where("form_responses.submission_id = ?", submissionID)
}

// Create 创建回答
func (r *ResponseRepository) Create(ctx context.Context, response *model.FormResponse) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(response).Error
}

// CreateBatch 批量创建回答
func (r *ResponseRepository) CreateBatch(ctx context.Context, responses []model.FormResponse) error {
	if len(responses) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(&responses).Error
}

// UpdateValue 更新回答内容
func (r *ResponseRepository) UpdateValue(ctx context.Context, response *model.FormResponse) error {
	return r.db.WithContext(ctx).Model(response).
		Omit(clause.Associations).
		Select("value").
		Updates(response).Error
}

// Delete 删除回答
func (r *ResponseRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.FormResponse{}).Error
}

// CheckExists 检查同一提交中该字段是否已有回答
func (r *ResponseRepository) CheckExists(ctx context.Context, submissionID, fieldID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.FormResponse{}).
		Where("submission_id = ? AND field_id = ?", submissionID, fieldID).
		Count(&count).Error
	return count > 0, err
}

// CountByField 统计引用该字段的回答数量
func (r *ResponseRepository) CountByField(ctx context.Context, fieldID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.FormResponse{}).
		Where("field_id = ?", fieldID).
		Count(&count).Error
	return count, err
}

// FindBySubmission 查询提交的全部回答
func (r *ResponseRepository) FindBySubmission(ctx context.Context, submissionID string) ([]model.FormResponse, error) {
	query := r.bySubmission(ctx, submissionID)
	for _, col := range responseOrder {
		query = query.Order(col)
	}

	responses := []model.FormResponse{}
	err := query.Find(&responses).Error
	return responses, err
}

// List 分页查询提交的回答
func (r *ResponseRepository) List(ctx context.Context, submissionID string, page Page) ([]model.FormResponse, int64, error) {
	var responses []model.FormResponse
	total, err := paginate(r.bySubmission(ctx, submissionID), page, responseOrder, &responses)
	return responses, total, err
}
