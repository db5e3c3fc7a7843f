package forms

import (
	"net/http"

	"github.com/fisker/biteform-backend/internal/api/middleware"
	"github.com/fisker/biteform-backend/internal/model"
	formService "github.com/fisker/biteform-backend/internal/service/forms"
	"github.com/gin-gonic/gin"
)

type ResponseHandler struct {
	service *formService.ResponseService
}

func NewResponseHandler(service *formService.ResponseService) *ResponseHandler {
	return &ResponseHandler{service: service}
}

// ListResponses 获取提交的回答列表
// @Router /api/v1/forms/{formId}/submissions/{submissionId}/responses [get]
func (h *ResponseHandler) ListResponses(c *gin.Context) {
	q := middleware.Payload[model.ListResponsesQuery](c)

	result, err := h.service.List(c.Request.Context(), c.Param("formId"), c.Param("submissionId"), q)
	if err != nil {
		model.HandleError(c, err, "list responses")
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *ResponseHandler) GetResponse(c *gin.Context) {
	q := middleware.Payload[model.TenantQuery](c)

	response, err := h.service.Get(c.Request.Context(), q.TenantID, c.Param("formId"), c.Param("submissionId"), c.Param("responseId"))
	if err != nil {
		model.HandleError(c, err, "get response")
		return
	}
	c.JSON(http.StatusOK, response)
}

// CreateResponse 追加回答，同一字段已有回答时返回 409
// @Router /api/v1/forms/{formId}/submissions/{submissionId}/responses [post]
func (h *ResponseHandler) CreateResponse(c *gin.Context) {
	q := middleware.Payload[model.TenantQuery](c)
	req := middleware.Payload[model.CreateResponseRequest](c)

	response, err := h.service.Create(c.Request.Context(), q.TenantID, c.Param("formId"), c.Param("submissionId"), req)
	if err != nil {
		model.HandleError(c, err, "create response")
		return
	}
	created(c, response.ID, response)
}

func (h *ResponseHandler) UpdateResponse(c *gin.Context) {
	q := middleware.Payload[model.TenantQuery](c)
	req := middleware.Payload[model.UpdateResponseRequest](c)

	response, err := h.service.Update(c.Request.Context(), q.TenantID, c.Param("formId"), c.Param("submissionId"), c.Param("responseId"), req)
	if err != nil {
		model.HandleError(c, err, "update response")
		return
	}
	c.JSON(http.StatusOK, response)
}

func (h *ResponseHandler) DeleteResponse(c *gin.Context) {
	q := middleware.Payload[model.TenantQuery](c)

	if err := h.service.Delete(c.Request.Context(), q.TenantID, c.Param("formId"), c.Param("submissionId"), c.Param("responseId")); err != nil {
		model.HandleError(c, err, "delete response")
		return
	}
	c.Status(http.StatusNoContent)
}
