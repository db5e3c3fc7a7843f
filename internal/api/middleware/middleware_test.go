package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fisker/biteform-backend/internal/model"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRecoveryMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(RecoveryMiddleware())
	r.GET("/panic", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, model.ProblemContentType, w.Header().Get("Content-Type"))
	assert.NotContains(t, w.Body.String(), "boom")
}

func TestValidateQueryAndBodyOnSameRoute(t *testing.T) {
	r := gin.New()
	r.POST("/fields",
		ValidateQuery[model.TenantQuery](),
		ValidateBody[model.CreateFieldRequest](),
		func(c *gin.Context) {
			q := Payload[model.TenantQuery](c)
			req := Payload[model.CreateFieldRequest](c)
			c.JSON(http.StatusOK, gin.H{"tenant": q.TenantID, "key": req.Key})
		})

	send := func(path, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	w := send("/fields?tenantId=t1", `{"key":"email","label":"Email","type":"text"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var got map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "t1", got["tenant"])
	assert.Equal(t, "email", got["key"])

	w = send("/fields", `{"key":"email","label":"Email","type":"text"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"tenantId"`)

	w = send("/fields?tenantId=t1", `{"key":"email","label":"Email","type":"rich-text"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	var p model.Problem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &p))
	assert.Contains(t, p.Errors, "type")
}

func TestPayloadWithoutValidation(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	q := Payload[model.TenantQuery](c)
	require.NotNil(t, q)
	assert.Empty(t, q.TenantID)
}

func TestMetricsMiddlewareUnmatched(t *testing.T) {
	r := gin.New()
	r.Use(MetricsMiddleware())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
