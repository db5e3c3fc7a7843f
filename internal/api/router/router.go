package router

import (
	"net/http"

	"github.com/fisker/biteform-backend/internal/api/handler"
	"github.com/fisker/biteform-backend/internal/api/middleware"
	"github.com/fisker/biteform-backend/internal/model"
	"github.com/fisker/biteform-backend/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handlers 路由所需的全部 handler
type Handlers struct {
	Form       *handler.FormHandler
	Field      *handler.FieldHandler
	Submission *handler.SubmissionHandler
	Response   *handler.ResponseHandler
	System     *handler.SystemHandler
}

func Setup(h Handlers, authService *service.AuthService, requireAuth bool) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true

	r.Use(middleware.RecoveryMiddleware())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.MetricsMiddleware())

	r.GET("/health", h.System.Health)
	r.HEAD("/health", h.System.Health)
	r.GET("/version", h.System.Version)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	tenant := middleware.ValidateQuery[model.TenantQuery]()

	v1 := r.Group("/api/v1")
	v1.Use(middleware.AuthMiddleware(authService, requireAuth))
	{
		v1.GET("/me", h.System.Me)

		// 表单
		forms := v1.Group("/forms")
		{
			forms.GET("", middleware.ValidateQuery[model.ListFormsQuery](), h.Form.ListForms)
			forms.POST("", middleware.ValidateBody[model.CreateFormRequest](), h.Form.CreateForm)
			forms.GET("/:formId", tenant, h.Form.GetForm)
			forms.PUT("/:formId", middleware.ValidateBody[model.UpdateFormRequest](), h.Form.UpdateForm)
			forms.DELETE("/:formId", tenant, h.Form.DeleteForm)
		}

		// 字段
		fields := forms.Group("/:formId/fields")
		{
			fields.GET("", middleware.ValidateQuery[model.ListFieldsQuery](), h.Field.ListFields)
			fields.POST("", tenant, middleware.ValidateBody[model.CreateFieldRequest](), h.Field.CreateField)
			fields.GET("/:fieldId", tenant, h.Field.GetField)
			fields.PUT("/:fieldId", tenant, middleware.ValidateBody[model.UpdateFieldRequest](), h.Field.UpdateField)
			fields.DELETE("/:fieldId", tenant, h.Field.DeleteField)
		}

		// 提交
		submissions := forms.Group("/:formId/submissions")
		{
			submissions.GET("", middleware.ValidateQuery[model.ListSubmissionsQuery](), h.Submission.ListSubmissions)
			submissions.POST("", tenant, middleware.ValidateBody[model.CreateSubmissionRequest](), h.Submission.CreateSubmission)
			submissions.GET("/:submissionId", tenant, h.Submission.GetSubmission)
			submissions.PUT("/:submissionId", tenant, middleware.ValidateBody[model.UpdateSubmissionRequest](), h.Submission.UpdateSubmission)
			submissions.DELETE("/:submissionId", tenant, h.Submission.DeleteSubmission)
		}

		// 回答
		responses := submissions.Group("/:submissionId/responses")
		{
			responses.GET("", middleware.ValidateQuery[model.ListResponsesQuery](), h.Response.ListResponses)
			responses.POST("", tenant, middleware.ValidateBody[model.CreateResponseRequest](), h.Response.CreateResponse)
			responses.GET("/:responseId", tenant, h.Response.GetResponse)
			responses.PUT("/:responseId", tenant, middleware.ValidateBody[model.UpdateResponseRequest](), h.Response.UpdateResponse)
			responses.DELETE("/:responseId", tenant, h.Response.DeleteResponse)
		}
	}

	r.NoRoute(func(c *gin.Context) {
		model.WriteProblem(c, model.NewProblem(http.StatusNotFound, "no route matches "+c.Request.URL.Path))
	})
	r.NoMethod(func(c *gin.Context) {
		model.WriteProblem(c, model.NewProblem(http.StatusMethodNotAllowed, c.Request.Method+" is not allowed on "+c.Request.URL.Path))
	})

	return r
}
