package forms

import (
	"context"
	"strings"

	"github.com/fisker/biteform-backend/internal/model"
	"github.com/fisker/biteform-backend/internal/repository"
	"github.com/fisker/biteform-backend/pkg/metrics"
	"github.com/google/uuid"
)

type FieldService struct {
	store *repository.Store
}

func NewFieldService(store *repository.Store) *FieldService {
	return &FieldService{store: store}
}

// List 分页查询表单字段，默认按 order 升序、key 升序
func (s *FieldService) List(ctx context.Context, formID string, q *model.ListFieldsQuery) (model.PagedResult[model.FormField], error) {
	if _, err := s.store.OwnedForm(ctx, q.TenantID, formID); err != nil {
		return model.PagedResult[model.FormField]{}, translate(err, errFormNotFound, "")
	}

	filter := repository.FieldFilter{
		FormID: formID,
		Q:      q.Q,
		SortBy: q.Sort,
		Desc:   isDesc(q.Order, false),
		Page:   repository.NewPage(q.Page, q.PageSize),
	}
	fields, total, err := s.store.Fields.List(ctx, filter)
	if err != nil {
		return model.PagedResult[model.FormField]{}, translate(err, errFieldNotFound, "")
	}
	return model.NewPagedResult(fields, total, filter.Page.Page, filter.Page.PageSize), nil
}

// Get 获取字段
func (s *FieldService) Get(ctx context.Context, tenantID, formID, fieldID string) (*model.FormField, error) {
	field, err := s.store.OwnedField(ctx, tenantID, formID, fieldID)
	if err != nil {
		return nil, translate(err, errFieldNotFound, "")
	}
	return field, nil
}

// Create 创建字段，同一表单内 key 不能重复
func (s *FieldService) Create(ctx context.Context, tenantID, formID string, req *model.CreateFieldRequest) (*model.FormField, error) {
	field := &model.FormField{
		ID:       uuid.New().String(),
		FormID:   formID,
		Key:      strings.TrimSpace(req.Key),
		Label:    strings.TrimSpace(req.Label),
		Type:     strings.ToLower(strings.TrimSpace(req.Type)),
		Required: req.Required,
		Order:    req.Order,
	}

	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		if _, err := tx.OwnedForm(ctx, tenantID, formID); err != nil {
			return err
		}
		exists, err := tx.Fields.CheckKeyExists(ctx, formID, field.Key, "")
		if err != nil {
			return err
		}
		if exists {
			return model.NewConflictError(errFieldKeyExists)
		}
		return tx.Fields.Create(ctx, field)
	})
	if err != nil {
		return nil, translate(err, errFormNotFound, errFieldKeyExists)
	}

	metrics.EntitiesCreated.WithLabelValues("field").Inc()
	return field, nil
}

// Update 仅应用提供且非空白的属性，修改 key 时重新检查唯一性
func (s *FieldService) Update(ctx context.Context, tenantID, formID, fieldID string, req *model.UpdateFieldRequest) (*model.FormField, error) {
	var field *model.FormField
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		var err error
		field, err = tx.OwnedField(ctx, tenantID, formID, fieldID)
		if err != nil {
			return err
		}

		if key, ok := nonBlank(req.Key); ok && key != field.Key {
			exists, err := tx.Fields.CheckKeyExists(ctx, formID, key, field.ID)
			if err != nil {
				return err
			}
			if exists {
				return model.NewConflictError(errFieldKeyExists)
			}
			field.Key = key
		}
		if label, ok := nonBlank(req.Label); ok {
			field.Label = label
		}
		if fieldType, ok := nonBlank(req.Type); ok {
			field.Type = strings.ToLower(fieldType)
		}
		if req.Required != nil {
			field.Required = *req.Required
		}
		if req.Order != nil {
			field.Order = *req.Order
		}
		return tx.Fields.Update(ctx, field)
	})
	if err != nil {
		return nil, translate(err, errFieldNotFound, errFieldKeyExists)
	}
	return field, nil
}

// Delete 删除字段，已有回答引用时拒绝删除
func (s *FieldService) Delete(ctx context.Context, tenantID, formID, fieldID string) error {
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		if _, err := tx.OwnedField(ctx, tenantID, formID, fieldID); err != nil {
			return err
		}
		count, err := tx.Responses.CountByField(ctx, fieldID)
		if err != nil {
			return err
		}
		if count > 0 {
			return model.NewConflictError(errFieldHasResponse)
		}
		return tx.Fields.Delete(ctx, fieldID)
	})
	if err != nil {
		return translate(err, errFieldNotFound, errFieldHasResponse)
	}

	metrics.EntitiesDeleted.WithLabelValues("field").Inc()
	return nil
}
