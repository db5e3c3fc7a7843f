// Package handler 提供统一的 handler 导出
// 所有 handler 按功能模块分类到子目录中
package handler

import (
	// Form handlers
	formsHandler "github.com/fisker/biteform-backend/internal/api/handler/forms"
	// System handlers
	systemHandler "github.com/fisker/biteform-backend/internal/api/handler/system"
)

// Form handlers
type FormHandler = formsHandler.FormHandler
type FieldHandler = formsHandler.FieldHandler
type SubmissionHandler = formsHandler.SubmissionHandler
type ResponseHandler = formsHandler.ResponseHandler

var NewFormHandler = formsHandler.NewFormHandler
var NewFieldHandler = formsHandler.NewFieldHandler
var NewSubmissionHandler = formsHandler.NewSubmissionHandler
var NewResponseHandler = formsHandler.NewResponseHandler

// System handlers
type SystemHandler = systemHandler.SystemHandler

var NewSystemHandler = systemHandler.NewSystemHandler
