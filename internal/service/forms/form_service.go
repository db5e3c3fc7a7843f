package forms

import (
	"context"
	"strings"
	"time"

	"github.com/fisker/biteform-backend/internal/model"
	"github.com/fisker/biteform-backend/internal/repository"
	"github.com/fisker/biteform-backend/pkg/logger"
	"github.com/fisker/biteform-backend/pkg/metrics"
	"github.com/google/uuid"
)

type FormService struct {
	store *repository.Store
}

func NewFormService(store *repository.Store) *FormService {
	return &FormService{store: store}
}

// List 分页查询租户的表单，默认按创建时间倒序
func (s *FormService) List(ctx context.Context, q *model.ListFormsQuery) (model.PagedResult[model.Form], error) {
	sortBy := q.Sort
	if sortBy == "" {
		sortBy = "createdAt"
	}
	filter := repository.FormFilter{
		TenantID: q.TenantID,
		Q:        q.Q,
		SortBy:   sortBy,
		Desc:     isDesc(q.Order, sortBy == "createdAt"),
		Page:     repository.NewPage(q.Page, q.PageSize),
	}

	forms, total, err := s.store.Forms.List(ctx, filter)
	if err != nil {
		return model.PagedResult[model.Form]{}, translate(err, errFormNotFound, "")
	}
	return model.NewPagedResult(forms, total, filter.Page.Page, filter.Page.PageSize), nil
}

// Get 获取表单
func (s *FormService) Get(ctx context.Context, tenantID, formID string) (*model.Form, error) {
	form, err := s.store.OwnedForm(ctx, tenantID, formID)
	if err != nil {
		return nil, translate(err, errFormNotFound, "")
	}
	return form, nil
}

// Create 创建表单
func (s *FormService) Create(ctx context.Context, req *model.CreateFormRequest) (*model.Form, error) {
	form := &model.Form{
		ID:          uuid.New().String(),
		TenantID:    strings.TrimSpace(req.TenantID),
		Name:        strings.TrimSpace(req.Name),
		Description: trimOrNil(req.Description),
		CreatedAt:   time.Now().UTC().Truncate(time.Microsecond),
	}

	if err := s.store.Forms.Create(ctx, form); err != nil {
		return nil, translate(err, errFormNotFound, "")
	}

	metrics.EntitiesCreated.WithLabelValues("form").Inc()
	logger.Debugf("Form created: id=%s tenant=%s", form.ID, form.TenantID)
	return form, nil
}

// Update 更新表单名称和描述
func (s *FormService) Update(ctx context.Context, formID string, req *model.UpdateFormRequest) (*model.Form, error) {
	var form *model.Form
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		var err error
		form, err = tx.OwnedForm(ctx, req.TenantID, formID)
		if err != nil {
			return err
		}
		form.Name = strings.TrimSpace(req.Name)
		form.Description = trimOrNil(req.Description)
		return tx.Forms.Update(ctx, form)
	})
	if err != nil {
		return nil, translate(err, errFormNotFound, "")
	}
	return form, nil
}

// Delete 删除表单及其字段、提交和回答
func (s *FormService) Delete(ctx context.Context, tenantID, formID string) error {
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		if _, err := tx.OwnedForm(ctx, tenantID, formID); err != nil {
			return err
		}
		return tx.Forms.DeleteCascade(ctx, formID)
	})
	if err != nil {
		return translate(err, errFormNotFound, "")
	}

	metrics.EntitiesDeleted.WithLabelValues("form").Inc()
	logger.Infof("Form deleted: id=%s tenant=%s", formID, tenantID)
	return nil
}
