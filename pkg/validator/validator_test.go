package validator

import (
	"strings"
	"testing"

	"github.com/fisker/biteform-backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func validationFields(t *testing.T, err error) map[string][]string {
	t.Helper()
	require.Error(t, err)
	var appErr *model.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, model.KindValidation, appErr.Kind)
	return appErr.Fields
}

func TestStruct_FormRequest(t *testing.T) {
	assert.NoError(t, Struct(&model.CreateFormRequest{TenantID: "t1", Name: "Contact"}))

	fields := validationFields(t, Struct(&model.CreateFormRequest{
		TenantID:    "   ",
		Name:        strings.Repeat("n", 257),
		Description: strPtr(strings.Repeat("d", 2001)),
	}))
	assert.Contains(t, fields, "tenantId")
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "description")
}

func TestStruct_FieldRequest(t *testing.T) {
	assert.NoError(t, Struct(&model.CreateFieldRequest{Key: "email", Label: "Email", Type: "Email", Order: 1}))

	fields := validationFields(t, Struct(&model.CreateFieldRequest{Key: "k", Label: "l", Type: "colour", Order: -1}))
	assert.Contains(t, fields, "type")
	assert.Contains(t, fields, "order")
	assert.NotContains(t, fields, "key")

	// 更新时空白字符串视为未提供
	assert.NoError(t, Struct(&model.UpdateFieldRequest{Key: strPtr("  "), Type: strPtr(" ")}))

	negative := -2
	fields = validationFields(t, Struct(&model.UpdateFieldRequest{Order: &negative}))
	assert.Contains(t, fields, "order")
}

func TestStruct_NestedPaths(t *testing.T) {
	req := &model.CreateSubmissionRequest{
		Responses: []model.SubmissionResponseItem{
			{FieldID: "f1", Value: strPtr("ok")},
			{FieldID: " ", Value: strPtr(strings.Repeat("v", 4001))},
		},
	}

	fields := validationFields(t, Struct(req))
	assert.Contains(t, fields, "responses[1].fieldId")
	assert.Contains(t, fields, "responses[1].value")
	assert.NotContains(t, fields, "responses[0].fieldId")
	assert.Len(t, fields["responses[1].fieldId"], 1)
}

func TestStruct_QueryEnums(t *testing.T) {
	assert.NoError(t, Struct(&model.ListFormsQuery{TenantID: "t1", Sort: "name", Order: "desc"}))

	fields := validationFields(t, Struct(&model.ListFormsQuery{TenantID: "t1", Sort: "size", Order: "up"}))
	assert.Equal(t, []string{"'sort' must be one of: name, createdAt."}, fields["sort"])
	assert.Contains(t, fields, "order")
}
