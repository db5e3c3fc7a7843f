package forms

import (
	"net/http"

	"github.com/fisker/biteform-backend/internal/api/middleware"
	"github.com/fisker/biteform-backend/internal/model"
	formService "github.com/fisker/biteform-backend/internal/service/forms"
	"github.com/gin-gonic/gin"
)

type FieldHandler struct {
	service *formService.FieldService
}

func NewFieldHandler(service *formService.FieldService) *FieldHandler {
	return &FieldHandler{service: service}
}

// ListFields 获取表单字段列表
// @Summary 获取表单字段列表
// @Tags fields
// @Produce json
// @Param formId path string true "表单ID"
// @Param tenantId query string true "租户ID"
// @Param sort query string false "order | key"
// @Router /api/v1/forms/{formId}/fields [get]
func (h *FieldHandler) ListFields(c *gin.Context) {
	q := middleware.Payload[model.ListFieldsQuery](c)

	result, err := h.service.List(c.Request.Context(), c.Param("formId"), q)
	if err != nil {
		model.HandleError(c, err, "list fields")
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *FieldHandler) GetField(c *gin.Context) {
	q := middleware.Payload[model.TenantQuery](c)

	field, err := h.service.Get(c.Request.Context(), q.TenantID, c.Param("formId"), c.Param("fieldId"))
	if err != nil {
		model.HandleError(c, err, "get field")
		return
	}
	c.JSON(http.StatusOK, field)
}

// CreateField 创建字段，key 重复时返回 409
// @Router /api/v1/forms/{formId}/fields [post]
func (h *FieldHandler) CreateField(c *gin.Context) {
	q := middleware.Payload[model.TenantQuery](c)
	req := middleware.Payload[model.CreateFieldRequest](c)

	field, err := h.service.Create(c.Request.Context(), q.TenantID, c.Param("formId"), req)
	if err != nil {
		model.HandleError(c, err, "create field")
		return
	}
	created(c, field.ID, field)
}

func (h *FieldHandler) UpdateField(c *gin.Context) {
	q := middleware.Payload[model.TenantQuery](c)
	req := middleware.Payload[model.UpdateFieldRequest](c)

	field, err := h.service.Update(c.Request.Context(), q.TenantID, c.Param("formId"), c.Param("fieldId"), req)
	if err != nil {
		model.HandleError(c, err, "update field")
		return
	}
	c.JSON(http.StatusOK, field)
}

// DeleteField 删除字段，仍有回答引用时返回 409
func (h *FieldHandler) DeleteField(c *gin.Context) {
	q := middleware.Payload[model.TenantQuery](c)

	if err := h.service.Delete(c.Request.Context(), q.TenantID, c.Param("formId"), c.Param("fieldId")); err != nil {
		model.HandleError(c, err, "delete field")
		return
	}
	c.Status(http.StatusNoContent)
}
