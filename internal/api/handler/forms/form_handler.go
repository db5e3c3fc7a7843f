package forms

import (
	"net/http"

	"github.com/fisker/biteform-backend/internal/api/middleware"
	"github.com/fisker/biteform-backend/internal/model"
	formService "github.com/fisker/biteform-backend/internal/service/forms"
	"github.com/gin-gonic/gin"
)

type FormHandler struct {
	service *formService.FormService
}

func NewFormHandler(service *formService.FormService) *FormHandler {
	return &FormHandler{service: service}
}

// ListForms 获取表单列表
// @Summary 获取表单列表
// @Tags forms
// @Produce json
// @Param tenantId query string true "租户ID"
// @Param q query string false "名称或描述关键字"
// @Param sort query string false "name | createdAt"
// @Param order query string false "asc | desc"
// @Success 200 {object} model.PagedResult[model.Form]
// @Router /api/v1/forms [get]
func (h *FormHandler) ListForms(c *gin.Context) {
	q := middleware.Payload[model.ListFormsQuery](c)

	result, err := h.service.List(c.Request.Context(), q)
	if err != nil {
		model.HandleError(c, err, "list forms")
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetForm 获取单个表单
// @Router /api/v1/forms/{formId} [get]
func (h *FormHandler) GetForm(c *gin.Context) {
	q := middleware.Payload[model.TenantQuery](c)

	form, err := h.service.Get(c.Request.Context(), q.TenantID, c.Param("formId"))
	if err != nil {
		model.HandleError(c, err, "get form")
		return
	}
	c.JSON(http.StatusOK, form)
}

// CreateForm 创建表单
// @Router /api/v1/forms [post]
func (h *FormHandler) CreateForm(c *gin.Context) {
	req := middleware.Payload[model.CreateFormRequest](c)

	form, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		model.HandleError(c, err, "create form")
		return
	}
	created(c, form.ID, form)
}

// UpdateForm 更新表单，tenantId 在请求体中
// @Router /api/v1/forms/{formId} [put]
func (h *FormHandler) UpdateForm(c *gin.Context) {
	req := middleware.Payload[model.UpdateFormRequest](c)

	form, err := h.service.Update(c.Request.Context(), c.Param("formId"), req)
	if err != nil {
		model.HandleError(c, err, "update form")
		return
	}
	c.JSON(http.StatusOK, form)
}

// DeleteForm 删除表单及其全部字段和提交
// @Router /api/v1/forms/{formId} [delete]
func (h *FormHandler) DeleteForm(c *gin.Context) {
	q := middleware.Payload[model.TenantQuery](c)

	if err := h.service.Delete(c.Request.Context(), q.TenantID, c.Param("formId")); err != nil {
		model.HandleError(c, err, "delete form")
		return
	}
	c.Status(http.StatusNoContent)
}
