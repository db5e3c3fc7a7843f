package forms

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fisker/biteform-backend/internal/model"
	"github.com/fisker/biteform-backend/internal/repository"
	"github.com/fisker/biteform-backend/pkg/logger"
	"github.com/fisker/biteform-backend/pkg/metrics"
	"github.com/google/uuid"
)

type SubmissionService struct {
	store *repository.Store
}

func NewSubmissionService(store *repository.Store) *SubmissionService {
	return &SubmissionService{store: store}
}

// List 分页查询提交，默认按提交时间倒序，列表项不含回答
func (s *SubmissionService) List(ctx context.Context, formID string, q *model.ListSubmissionsQuery) (model.PagedResult[model.FormSubmission], error) {
	if _, err := s.store.OwnedForm(ctx, q.TenantID, formID); err != nil {
		return model.PagedResult[model.FormSubmission]{}, translate(err, errFormNotFound, "")
	}

	filter := repository.SubmissionFilter{
		FormID:      formID,
		TenantID:    q.TenantID,
		SubmittedBy: q.SubmittedBy,
		From:        q.From,
		To:          q.To,
		Desc:        isDesc(q.Order, true),
		Page:        repository.NewPage(q.Page, q.PageSize),
	}
	submissions, total, err := s.store.Submissions.List(ctx, filter)
	if err != nil {
		return model.PagedResult[model.FormSubmission]{}, translate(err, errSubmissionNotFound, "")
	}
	for i := range submissions {
		submissions[i].Responses = []model.FormResponse{}
	}
	return model.NewPagedResult(submissions, total, filter.Page.Page, filter.Page.PageSize), nil
}

// Get 获取提交及其全部回答
func (s *SubmissionService) Get(ctx context.Context, tenantID, formID, submissionID string) (*model.FormSubmission, error) {
	submission, err := s.store.OwnedSubmission(ctx, tenantID, formID, submissionID)
	if err != nil {
		return nil, translate(err, errSubmissionNotFound, "")
	}
	submission.Responses, err = s.store.Responses.FindBySubmission(ctx, submission.ID)
	if err != nil {
		return nil, translate(err, errSubmissionNotFound, "")
	}
	return submission, nil
}

// Create 创建提交及其回答，任一 fieldId 无效时整体失败
func (s *SubmissionService) Create(ctx context.Context, tenantID, formID string, req *model.CreateSubmissionRequest) (*model.FormSubmission, error) {
	var submission *model.FormSubmission
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		form, err := tx.OwnedForm(ctx, tenantID, formID)
		if err != nil {
			return err
		}

		if err := s.checkFieldIDs(ctx, tx, formID, req.Responses); err != nil {
			return err
		}

		submission = &model.FormSubmission{
			ID:          uuid.New().String(),
			FormID:      form.ID,
			TenantID:    form.TenantID,
			SubmittedAt: time.Now().UTC().Truncate(time.Microsecond),
			SubmittedBy: trimOrNil(req.SubmittedBy),
		}
		if err := tx.Submissions.Create(ctx, submission); err != nil {
			return err
		}

		responses := make([]model.FormResponse, 0, len(req.Responses))
		for _, item := range req.Responses {
			responses = append(responses, model.FormResponse{
				ID:           uuid.New().String(),
				SubmissionID: submission.ID,
				FieldID:      strings.TrimSpace(item.FieldID),
				Value:        item.Value,
			})
		}
		if err := tx.Responses.CreateBatch(ctx, responses); err != nil {
			return err
		}

		submission.Responses, err = tx.Responses.FindBySubmission(ctx, submission.ID)
		return err
	})
	if err != nil {
		return nil, translate(err, errFormNotFound, errResponseExists)
	}

	metrics.EntitiesCreated.WithLabelValues("submission").Inc()
	metrics.EntitiesCreated.WithLabelValues("response").Add(float64(len(submission.Responses)))
	logger.Debugf("Submission created: id=%s form=%s responses=%d", submission.ID, formID, len(submission.Responses))
	return submission, nil
}

// checkFieldIDs 请求中的 fieldId 必须属于该表单且不重复
func (s *SubmissionService) checkFieldIDs(ctx context.Context, tx *repository.Store, formID string, items []model.SubmissionResponseItem) error {
	if len(items) == 0 {
		return nil
	}

	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, strings.TrimSpace(item.FieldID))
	}
	valid, err := tx.Fields.FindIDsInForm(ctx, formID, ids)
	if err != nil {
		return err
	}

	fields := make(map[string][]string)
	seen := make(map[string]bool, len(items))
	for i, id := range ids {
		path := fmt.Sprintf("responses[%d].fieldId", i)
		switch {
		case !valid[id]:
			fields[path] = append(fields[path], msgInvalidFieldID)
		case seen[id]:
			fields[path] = append(fields[path], msgDuplicateFieldID)
		}
		seen[id] = true
	}
	if len(fields) > 0 {
		return model.NewValidationError(fields)
	}
	return nil
}

// Update 更新提交人，提供空白字符串时清空
func (s *SubmissionService) Update(ctx context.Context, tenantID, formID, submissionID string, req *model.UpdateSubmissionRequest) (*model.FormSubmission, error) {
	var submission *model.FormSubmission
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		var err error
		submission, err = tx.OwnedSubmission(ctx, tenantID, formID, submissionID)
		if err != nil {
			return err
		}
		if req.SubmittedBy != nil {
			submission.SubmittedBy = trimOrNil(req.SubmittedBy)
			if err := tx.Submissions.UpdateSubmittedBy(ctx, submission); err != nil {
				return err
			}
		}
		submission.Responses, err = tx.Responses.FindBySubmission(ctx, submission.ID)
		return err
	})
	if err != nil {
		return nil, translate(err, errSubmissionNotFound, "")
	}
	return submission, nil
}

// Delete 删除提交及其回答
func (s *SubmissionService) Delete(ctx context.Context, tenantID, formID, submissionID string) error {
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		if _, err := tx.OwnedSubmission(ctx, tenantID, formID, submissionID); err != nil {
			return err
		}
		return tx.Submissions.DeleteCascade(ctx, submissionID)
	})
	if err != nil {
		return translate(err, errSubmissionNotFound, "")
	}

	metrics.EntitiesDeleted.WithLabelValues("submission").Inc()
	return nil
}
