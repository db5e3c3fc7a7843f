package forms

import (
	"context"
	"strings"

	"github.com/fisker/biteform-backend/internal/model"
	"github.com/fisker/biteform-backend/internal/repository"
	"github.com/fisker/biteform-backend/pkg/metrics"
	"github.com/google/uuid"
)

type ResponseService struct {
	store *repository.Store
}

func NewResponseService(store *repository.Store) *ResponseService {
	return &ResponseService{store: store}
}

// List 分页查询提交的回答
func (s *ResponseService) List(ctx context.Context, formID, submissionID string, q *model.ListResponsesQuery) (model.PagedResult[model.FormResponse], error) {
	if _, err := s.store.OwnedSubmission(ctx, q.TenantID, formID, submissionID); err != nil {
		return model.PagedResult[model.FormResponse]{}, translate(err, errSubmissionNotFound, "")
	}

	page := repository.NewPage(q.Page, q.PageSize)
	responses, total, err := s.store.Responses.List(ctx, submissionID, page)
	if err != nil {
		return model.PagedResult[model.FormResponse]{}, translate(err, errResponseNotFound, "")
	}
	return model.NewPagedResult(responses, total, page.Page, page.PageSize), nil
}

// Get 获取回答
func (s *ResponseService) Get(ctx context.Context, tenantID, formID, submissionID, responseID string) (*model.FormResponse, error) {
	response, err := s.store.OwnedResponse(ctx, tenantID, formID, submissionID, responseID)
	if err != nil {
		return nil, translate(err, errResponseNotFound, "")
	}
	return response, nil
}

// Create 为已有提交追加回答，每个字段只能有一个回答
func (s *ResponseService) Create(ctx context.Context, tenantID, formID, submissionID string, req *model.CreateResponseRequest) (*model.FormResponse, error) {
	response := &model.FormResponse{
		ID:           uuid.New().String(),
		SubmissionID: submissionID,
		FieldID:      strings.TrimSpace(req.FieldID),
		Value:        req.Value,
	}

	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		if _, err := tx.OwnedSubmission(ctx, tenantID, formID, submissionID); err != nil {
			return err
		}

		valid, err := tx.Fields.FindIDsInForm(ctx, formID, []string{response.FieldID})
		if err != nil {
			return err
		}
		if !valid[response.FieldID] {
			return model.NewFieldError("fieldId", msgInvalidFieldID)
		}

		exists, err := tx.Responses.CheckExists(ctx, submissionID, response.FieldID)
		if err != nil {
			return err
		}
		if exists {
			return model.NewConflictError(errResponseExists)
		}
		return tx.Responses.Create(ctx, response)
	})
	if err != nil {
		return nil, translate(err, errSubmissionNotFound, errResponseExists)
	}

	metrics.EntitiesCreated.WithLabelValues("response").Inc()
	return response, nil
}

// Update 更新回答内容
func (s *ResponseService) Update(ctx context.Context, tenantID, formID, submissionID, responseID string, req *model.UpdateResponseRequest) (*model.FormResponse, error) {
	var response *model.FormResponse
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		var err error
		response, err = tx.OwnedResponse(ctx, tenantID, formID, submissionID, responseID)
		if err != nil {
			return err
		}
		if req.Value == nil {
			return nil
		}
		response.Value = req.Value
		return tx.Responses.UpdateValue(ctx, response)
	})
	if err != nil {
		return nil, translate(err, errResponseNotFound, "")
	}
	return response, nil
}

// Delete 删除回答
func (s *ResponseService) Delete(ctx context.Context, tenantID, formID, submissionID, responseID string) error {
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		if _, err := tx.OwnedResponse(ctx, tenantID, formID, submissionID, responseID); err != nil {
			return err
		}
		return tx.Responses.Delete(ctx, responseID)
	})
	if err != nil {
		return translate(err, errResponseNotFound, "")
	}

	metrics.EntitiesDeleted.WithLabelValues("response").Inc()
	return nil
}
