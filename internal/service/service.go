// Package service 提供统一的 service 导出
// 所有 service 按功能模块分类到子目录中
package service

import (
	// Auth services
	authService "github.com/fisker/biteform-backend/internal/service/auth"
	// Form services
	formsService "github.com/fisker/biteform-backend/internal/service/forms"
)

// Auth services
type AuthService = authService.AuthService
type Claims = authService.Claims

var NewAuthService = authService.NewAuthService

// Form services
type FormService = formsService.FormService
type FieldService = formsService.FieldService
type SubmissionService = formsService.SubmissionService
type ResponseService = formsService.ResponseService

var NewFormService = formsService.NewFormService
var NewFieldService = formsService.NewFieldService
var NewSubmissionService = formsService.NewSubmissionService
var NewResponseService = formsService.NewResponseService
