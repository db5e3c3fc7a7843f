package forms

import (
	"net/http"

	"github.com/fisker/biteform-backend/internal/api/middleware"
	"github.com/fisker/biteform-backend/internal/model"
	formService "github.com/fisker/biteform-backend/internal/service/forms"
	"github.com/gin-gonic/gin"
)

type SubmissionHandler struct {
	service *formService.SubmissionService
}

func NewSubmissionHandler(service *formService.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{service: service}
}

// ListSubmissions 获取提交列表
// @Summary 获取提交列表
// @Tags submissions
// @Produce json
// @Param formId path string true "表单ID"
// @Param tenantId query string true "租户ID"
// @Param submittedBy query string false "提交人关键字"
// @Param from query string false "起始时间 RFC3339"
// @Param to query string false "结束时间 RFC3339"
// @Param order query string false "asc | desc"
// @Router /api/v1/forms/{formId}/submissions [get]
func (h *SubmissionHandler) ListSubmissions(c *gin.Context) {
	q := middleware.Payload[model.ListSubmissionsQuery](c)

	result, err := h.service.List(c.Request.Context(), c.Param("formId"), q)
	if err != nil {
		model.HandleError(c, err, "list submissions")
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetSubmission 获取提交及其回答
func (h *SubmissionHandler) GetSubmission(c *gin.Context) {
	q := middleware.Payload[model.TenantQuery](c)

	submission, err := h.service.Get(c.Request.Context(), q.TenantID, c.Param("formId"), c.Param("submissionId"))
	if err != nil {
		model.HandleError(c, err, "get submission")
		return
	}
	c.JSON(http.StatusOK, submission)
}

// CreateSubmission 创建提交，fieldId 无效时返回 400 且不写入任何数据
// @Router /api/v1/forms/{formId}/submissions [post]
func (h *SubmissionHandler) CreateSubmission(c *gin.Context) {
	q := middleware.Payload[model.TenantQuery](c)
	req := middleware.Payload[model.CreateSubmissionRequest](c)

	submission, err := h.service.Create(c.Request.Context(), q.TenantID, c.Param("formId"), req)
	if err != nil {
		model.HandleError(c, err, "create submission")
		return
	}
	created(c, submission.ID, submission)
}

func (h *SubmissionHandler) UpdateSubmission(c *gin.Context) {
	q := middleware.Payload[model.TenantQuery](c)
	req := middleware.Payload[model.UpdateSubmissionRequest](c)

	submission, err := h.service.Update(c.Request.Context(), q.TenantID, c.Param("formId"), c.Param("submissionId"), req)
	if err != nil {
		model.HandleError(c, err, "update submission")
		return
	}
	c.JSON(http.StatusOK, submission)
}

func (h *SubmissionHandler) DeleteSubmission(c *gin.Context) {
	q := middleware.Payload[model.TenantQuery](c)

	if err := h.service.Delete(c.Request.Context(), q.TenantID, c.Param("formId"), c.Param("submissionId")); err != nil {
		model.HandleError(c, err, "delete submission")
		return
	}
	c.Status(http.StatusNoContent)
}
