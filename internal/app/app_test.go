package app

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/fisker/biteform-backend/internal/model"
	"github.com/fisker/biteform-backend/pkg/config"
	"github.com/fisker/biteform-backend/pkg/database/dbtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T, requireAuth bool) *App {
	t.Helper()
	cfg := &config.Config{
		App:    config.AppConfig{Name: "BiteForm", Version: "test"},
		Server: config.ServerConfig{Mode: "test"},
		Security: config.SecurityConfig{
			JWTSecret:   "test-secret-0123456789abcdef0123456789abcdef",
			RequireAuth: requireAuth,
		},
	}
	return New(cfg, dbtest.New(t))
}

type call struct {
	method string
	path   string
	body   interface{}
	token  string
}

func (a *App) do(t *testing.T, c call) *httptest.ResponseRecorder {
	t.Helper()
	var body bytes.Buffer
	if c.body != nil {
		require.NoError(t, json.NewEncoder(&body).Encode(c.body))
	}
	req := httptest.NewRequest(c.method, c.path, &body)
	if c.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", c.token)
	}
	w := httptest.NewRecorder()
	a.Router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func requireProblem(t *testing.T, w *httptest.ResponseRecorder, status int) model.Problem {
	t.Helper()
	require.Equal(t, status, w.Code, w.Body.String())
	assert.True(t, strings.HasPrefix(w.Header().Get("Content-Type"), model.ProblemContentType))
	p := decode[model.Problem](t, w)
	assert.Equal(t, status, p.Status)
	assert.NotEmpty(t, p.Type)
	assert.NotEmpty(t, p.Title)
	return p
}

func TestFormLifecycle(t *testing.T) {
	a := newTestApp(t, false)

	w := a.do(t, call{method: http.MethodPost, path: "/api/v1/forms", body: obj{"tenantId": "t1", "name": "Contact"}})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	form := decode[model.Form](t, w)
	assert.Equal(t, "/api/v1/forms/"+form.ID, w.Header().Get("Location"))
	assert.Contains(t, w.Body.String(), `"createdAtUtc"`)

	base := "/api/v1/forms/" + form.ID
	w = a.do(t, call{method: http.MethodPost, path: base + "/fields?tenantId=t1", body: obj{
		"key": "email", "label": "Email", "type": "Email", "required": true, "order": 1,
	}})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	field := decode[model.FormField](t, w)
	assert.Equal(t, "email", field.Type)
	assert.Equal(t, base+"/fields/"+field.ID, w.Header().Get("Location"))

	w = a.do(t, call{method: http.MethodPost, path: base + "/submissions?tenantId=t1", body: obj{
		"submittedBy": "alice",
		"responses":   []obj{{"fieldId": field.ID, "value": "a@b.com"}},
	}})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	submission := decode[model.FormSubmission](t, w)
	require.Len(t, submission.Responses, 1)
	assert.Equal(t, "a@b.com", *submission.Responses[0].Value)
	assert.Equal(t, base+"/submissions/"+submission.ID, w.Header().Get("Location"))

	w = a.do(t, call{method: http.MethodGet, path: base + "/submissions/" + submission.ID + "?tenantId=t1"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"submittedAtUtc"`)

	w = a.do(t, call{method: http.MethodGet, path: "/api/v1/forms?tenantId=t1"})
	require.Equal(t, http.StatusOK, w.Code)
	page := decode[model.PagedResult[model.Form]](t, w)
	assert.Equal(t, int64(1), page.Total)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 20, page.PageSize)

	// 字段已有回答时不能删除
	w = a.do(t, call{method: http.MethodDelete, path: base + "/fields/" + field.ID + "?tenantId=t1"})
	requireProblem(t, w, http.StatusConflict)

	w = a.do(t, call{method: http.MethodDelete, path: base + "?tenantId=t1"})
	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	w = a.do(t, call{method: http.MethodGet, path: base + "/submissions/" + submission.ID + "?tenantId=t1"})
	requireProblem(t, w, http.StatusNotFound)
}

type obj = map[string]interface{}

func TestValidationProblems(t *testing.T) {
	a := newTestApp(t, false)

	w := a.do(t, call{method: http.MethodPost, path: "/api/v1/forms", body: obj{"tenantId": "  ", "name": ""}})
	p := requireProblem(t, w, http.StatusBadRequest)
	assert.Equal(t, "One or more validation errors occurred.", p.Title)
	assert.Contains(t, p.Errors, "tenantId")
	assert.Contains(t, p.Errors, "name")

	w = a.do(t, call{method: http.MethodGet, path: "/api/v1/forms/abc"})
	p = requireProblem(t, w, http.StatusBadRequest)
	assert.Contains(t, p.Errors, "tenantId")

	w = a.do(t, call{method: http.MethodGet, path: "/api/v1/forms?tenantId=t1&sort=updatedAt"})
	p = requireProblem(t, w, http.StatusBadRequest)
	assert.Contains(t, p.Errors, "sort")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/forms", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	a.Router.ServeHTTP(rec, req)
	requireProblem(t, rec, http.StatusBadRequest)

	w = a.do(t, call{method: http.MethodGet, path: "/api/v1/forms/not-a-uuid?tenantId=t1"})
	p = requireProblem(t, w, http.StatusNotFound)
	assert.Equal(t, "form not found", p.Detail)
}

func TestSubmissionWithInvalidFieldReturnsErrorPath(t *testing.T) {
	a := newTestApp(t, false)

	w := a.do(t, call{method: http.MethodPost, path: "/api/v1/forms", body: obj{"tenantId": "t1", "name": "Contact"}})
	require.Equal(t, http.StatusCreated, w.Code)
	form := decode[model.Form](t, w)
	base := "/api/v1/forms/" + form.ID

	w = a.do(t, call{method: http.MethodPost, path: base + "/fields?tenantId=t1", body: obj{"key": "email", "label": "Email", "type": "text"}})
	require.Equal(t, http.StatusCreated, w.Code)
	field := decode[model.FormField](t, w)

	w = a.do(t, call{method: http.MethodPost, path: base + "/submissions?tenantId=t1", body: obj{
		"responses": []obj{{"fieldId": field.ID, "value": "x"}, {"fieldId": "00000000-0000-0000-0000-000000000000"}},
	}})
	p := requireProblem(t, w, http.StatusBadRequest)
	assert.Equal(t, []string{"Invalid fieldId for form"}, p.Errors["responses[1].fieldId"])

	w = a.do(t, call{method: http.MethodGet, path: base + "/submissions?tenantId=t1"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(0), decode[model.PagedResult[model.FormSubmission]](t, w).Total)

	// 空值回答输出为空字符串
	w = a.do(t, call{method: http.MethodPost, path: base + "/submissions?tenantId=t1", body: obj{
		"responses": []obj{{"fieldId": field.ID}},
	}})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"value":""`)
}

func TestUnknownRouteAndMethod(t *testing.T) {
	a := newTestApp(t, false)

	requireProblem(t, a.do(t, call{method: http.MethodGet, path: "/nope"}), http.StatusNotFound)
	requireProblem(t, a.do(t, call{method: http.MethodPatch, path: "/api/v1/forms"}), http.StatusMethodNotAllowed)
}

func TestOperationalEndpoints(t *testing.T) {
	a := newTestApp(t, false)

	w := a.do(t, call{method: http.MethodGet, path: "/health"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", decode[obj](t, w)["status"])

	w = a.do(t, call{method: http.MethodGet, path: "/version"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "test", decode[obj](t, w)["version"])

	w = a.do(t, call{method: http.MethodGet, path: "/metrics"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "biteform_api_requests_total")
}

func TestAuthentication(t *testing.T) {
	t.Run("可选认证", func(t *testing.T) {
		a := newTestApp(t, false)

		requireProblem(t, a.do(t, call{method: http.MethodGet, path: "/api/v1/me"}), http.StatusUnauthorized)

		token, err := a.Services.Auth.GenerateToken("user-1", "u@example.com", "User", time.Hour)
		require.NoError(t, err)
		w := a.do(t, call{method: http.MethodGet, path: "/api/v1/me", token: "Bearer " + token})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		me := decode[obj](t, w)
		assert.Equal(t, "user-1", me["sub"])
		assert.Equal(t, "u@example.com", me["email"])

		// 携带无效 Token 时即使认证可选也拒绝
		requireProblem(t, a.do(t, call{method: http.MethodGet, path: "/api/v1/forms?tenantId=t1", token: "Bearer garbage"}), http.StatusUnauthorized)
	})

	t.Run("强制认证", func(t *testing.T) {
		a := newTestApp(t, true)

		requireProblem(t, a.do(t, call{method: http.MethodGet, path: "/api/v1/forms?tenantId=t1"}), http.StatusUnauthorized)
		requireProblem(t, a.do(t, call{method: http.MethodGet, path: "/api/v1/forms?tenantId=t1", token: "Token abc"}), http.StatusUnauthorized)

		token, err := a.Services.Auth.GenerateToken("user-1", "", "", time.Hour)
		require.NoError(t, err)
		w := a.do(t, call{method: http.MethodGet, path: "/api/v1/forms?tenantId=t1", token: "Bearer " + token})
		assert.Equal(t, http.StatusOK, w.Code, w.Body.String())

		// 运维接口不需要认证
		assert.Equal(t, http.StatusOK, a.do(t, call{method: http.MethodGet, path: "/health"}).Code)
	})
}
