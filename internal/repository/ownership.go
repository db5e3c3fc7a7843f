package repository

import (
	"context"

	"github.com/fisker/biteform-backend/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// 所有权链校验：Response -> Submission -> Form -> tenantId
// 任一环节不匹配都返回 gorm.ErrRecordNotFound，跨租户访问与不存在无法区分

func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// OwnedForm 查找属于租户的表单
func (s *Store) OwnedForm(ctx context.Context, tenantID, formID string) (*model.Form, error) {
	if tenantID == "" || !validID(formID) {
		return nil, gorm.ErrRecordNotFound
	}
	var form model.Form
	err := s.db.WithContext(ctx).
		Where("id = ? AND tenant_id = ?", formID, tenantID).
		First(&form).Error
	if err != nil {
		return nil, err
	}
	return &form, nil
}

// OwnedField 查找属于租户表单的字段
func (s *Store) OwnedField(ctx context.Context, tenantID, formID, fieldID string) (*model.FormField, error) {
	if _, err := s.OwnedForm(ctx, tenantID, formID); err != nil {
		return nil, err
	}
	if !validID(fieldID) {
		return nil, gorm.ErrRecordNotFound
	}
	var field model.FormField
	err := s.db.WithContext(ctx).
		Where("id = ? AND form_id = ?", fieldID, formID).
		First(&field).Error
	if err != nil {
		return nil, err
	}
	return &field, nil
}

// OwnedSubmission 查找属于租户表单的提交
func (s *Store) OwnedSubmission(ctx context.Context, tenantID, formID, submissionID string) (*model.FormSubmission, error) {
	if _, err := s.OwnedForm(ctx, tenantID, formID); err != nil {
		return nil, err
	}
	if !validID(submissionID) {
		return nil, gorm.ErrRecordNotFound
	}
	var submission model.FormSubmission
	err := s.db.WithContext(ctx).
		Where("id = ? AND form_id = ?", submissionID, formID).
		First(&submission).Error
	if err != nil {
		return nil, err
	}
	return &submission, nil
}

// OwnedResponse 查找属于租户提交的回答
func (s *Store) OwnedResponse(ctx context.Context, tenantID, formID, submissionID, responseID string) (*model.FormResponse, error) {
	if _, err := s.OwnedSubmission(ctx, tenantID, formID, submissionID); err != nil {
		return nil, err
	}
	if !validID(responseID) {
		return nil, gorm.ErrRecordNotFound
	}
	var response model.FormResponse
	err := s.db.WithContext(ctx).
		Where("id = ? AND submission_id = ?", responseID, submissionID).
		First(&response).Error
	if err != nil {
		return nil, err
	}
	return &response, nil
}
