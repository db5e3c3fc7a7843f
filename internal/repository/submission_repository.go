package repository

import (
	"context"
	"strings"
	"time"

	"github.com/fisker/biteform-backend/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SubmissionRepository struct {
	db *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) *SubmissionRepository {
	return &SubmissionRepository{db: db}
}

// SubmissionFilter 提交列表条件，From/To 为零值时不限制
type SubmissionFilter struct {
	FormID      string
	TenantID    string
	SubmittedBy string
	From        time.Time
	To          time.Time
	Desc        bool
	Page        Page
}

// Create 创建提交
func (r *SubmissionRepository) Create(ctx context.Context, submission *model.FormSubmission) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(submission).Error
}

// UpdateSubmittedBy 更新提交人
func (r *SubmissionRepository) UpdateSubmittedBy(ctx context.Context, submission *model.FormSubmission) error {
	return r.db.WithContext(ctx).Model(submission).
		Omit(clause.Associations).
		Select("submitted_by").
		Updates(submission).Error
}

// DeleteCascade 删除提交及其回答，需在事务中调用
func (r *SubmissionRepository) DeleteCascade(ctx context.Context, id string) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("submission_id = ?", id).Delete(&model.FormResponse{}).Error; err != nil {
		return err
	}
	return db.Where("id = ?", id).Delete(&model.FormSubmission{}).Error
}

// List 分页查询表单提交，列表项不含回答
func (r *SubmissionRepository) List(ctx context.Context, filter SubmissionFilter) ([]model.FormSubmission, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.FormSubmission{}).
		Where("form_id = ? AND tenant_id = ?", filter.FormID, filter.TenantID)
	if strings.TrimSpace(filter.SubmittedBy) != "" {
		query = query.Where("LOWER(COALESCE(submitted_by, '')) LIKE ?", containsPattern(filter.SubmittedBy))
	}
	if !filter.From.IsZero() {
		query = query.Where("submitted_at >= ?", filter.From.UTC())
	}
	if !filter.To.IsZero() {
		query = query.Where("submitted_at <= ?", filter.To.UTC())
	}

	order := []clause.OrderByColumn{
		orderColumn("", "submitted_at", filter.Desc),
		orderColumn("", "id", false),
	}

	var submissions []model.FormSubmission
	total, err := paginate(query, filter.Page, order, &submissions)
	return submissions, total, err
}
