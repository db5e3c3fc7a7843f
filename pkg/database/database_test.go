package database_test

import (
	"context"
	"testing"

	"github.com/fisker/biteform-backend/internal/model"
	"github.com/fisker/biteform-backend/pkg/database"
	"github.com/fisker/biteform-backend/pkg/database/dbtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestAutoMigrateAll(t *testing.T) {
	db := dbtest.New(t)

	for _, m := range database.Models() {
		assert.True(t, db.Migrator().HasTable(m), "%T", m)
	}
	assert.True(t, db.Migrator().HasIndex(&model.FormField{}, "ux_form_fields_form_key"))
	assert.True(t, db.Migrator().HasIndex(&model.FormResponse{}, "ux_form_responses_submission_field"))

	// 表已存在时再次迁移不报错
	require.NoError(t, database.AutoMigrateAll(db))
	require.NoError(t, database.Ping(context.Background(), db))
}

func TestUniqueFieldKeyIsTranslated(t *testing.T) {
	db := dbtest.New(t)

	form := model.Form{ID: "11111111-1111-1111-1111-111111111111", TenantID: "t1", Name: "Contact"}
	require.NoError(t, db.Create(&form).Error)

	first := model.FormField{ID: "22222222-2222-2222-2222-222222222222", FormID: form.ID, Key: "email", Label: "Email", Type: "email"}
	require.NoError(t, db.Omit("Form").Create(&first).Error)

	dup := model.FormField{ID: "33333333-3333-3333-3333-333333333333", FormID: form.ID, Key: "email", Label: "Other", Type: "text"}
	err := db.Omit("Form").Create(&dup).Error
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}
