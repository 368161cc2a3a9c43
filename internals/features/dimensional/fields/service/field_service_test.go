// file: internals/features/dimensional/fields/service/field_service_test.go
package service

import (
	"context"
	"testing"

	groupModel "dimensiku_backend/internals/features/dimensional/dimensional_groups/model"
	dimModel "dimensiku_backend/internals/features/dimensional/dimensionals/model"
	fieldModel "dimensiku_backend/internals/features/dimensional/fields/model"
	gfModel "dimensiku_backend/internals/features/dimensional/group_fields/model"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&groupModel.DimensionalGroupModel{},
		&dimModel.DimensionalModel{},
		&fieldModel.FieldModel{},
		&gfModel.DimensionalGroupFieldModel{},
	))
	return db
}

func ptrInt(n int) *int       { return &n }
func ptrBool(b bool) *bool    { return &b }
func ptrStr(s string) *string { return &s }

func TestGetFieldsWithDetails(t *testing.T) {
	db := newTestDB(t)
	svc := NewFieldService(db)

	// dimensional yang jadi type tag
	typeTag := dimModel.DimensionalModel{DimensionalName: ptrStr("text")}
	require.NoError(t, db.Create(&typeTag).Error)

	g := groupModel.DimensionalGroupModel{DimensionalGroupName: ptrStr("grup")}
	require.NoError(t, db.Create(&g).Error)

	f := fieldModel.FieldModel{
		FieldName:              ptrStr("Nama"),
		FieldTypeDimensionalID: ptrInt(typeTag.DimensionalID),
	}
	require.NoError(t, db.Create(&f).Error)

	require.NoError(t, db.Create(&gfModel.DimensionalGroupFieldModel{
		DimensionalGroupID: ptrInt(g.DimensionalGroupID),
		FieldID:            ptrInt(f.FieldID),
		IsForGroup:         ptrBool(true),
		FieldSort:          ptrInt(1),
	}).Error)

	out := svc.GetFieldsWithDetails(context.Background())
	require.Len(t, out, 1)

	detail := out[0]
	assert.Equal(t, "Nama", *detail.FieldName)
	require.NotNil(t, detail.FieldType)
	assert.Equal(t, "text", *detail.FieldType.DimensionalName)
	require.Len(t, detail.DimensionalGroupFields, 1)
	require.NotNil(t, detail.DimensionalGroupFields[0].DimensionalGroup)
	assert.Equal(t, "grup", *detail.DimensionalGroupFields[0].DimensionalGroup.DimensionalGroupName)
}

func TestGetFieldsWithDetailsWithoutRelations(t *testing.T) {
	db := newTestDB(t)
	svc := NewFieldService(db)

	f := fieldModel.FieldModel{FieldName: ptrStr("Yatim")}
	require.NoError(t, db.Create(&f).Error)

	out := svc.GetFieldsWithDetails(context.Background())
	require.Len(t, out, 1)
	assert.Nil(t, out[0].FieldType)
	assert.Empty(t, out[0].DimensionalGroupFields)
}
