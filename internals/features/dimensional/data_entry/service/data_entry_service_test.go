// file: internals/features/dimensional/data_entry/service/data_entry_service_test.go
package service

import (
	"context"
	"testing"

	fieldModel "dimensiku_backend/internals/features/dimensional/fields/model"
	followModel "dimensiku_backend/internals/features/dimensional/follows/model"
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
		&followModel.DimensionalTextFollowModel{},
		&followModel.DimensionalNumberFollowModel{},
		&followModel.DimensionalBooleanFollowModel{},
		&followModel.DimensionalDateFollowModel{},
		&followModel.DimensionalDescriptionFollowModel{},
		&followModel.DimensionalIDFollowModel{},
		&followModel.DimensionalGroupTextFollowModel{},
		&followModel.DimensionalGroupNumberFollowModel{},
		&followModel.DimensionalGroupBooleanFollowModel{},
		&followModel.DimensionalGroupDateFollowModel{},
		&followModel.DimensionalGroupIDFollowModel{},
	))
	return db
}

func ptrInt(n int) *int       { return &n }
func ptrBool(b bool) *bool    { return &b }
func ptrStr(s string) *string { return &s }

// attachment membuat satu baris gc_dimensional_group_field in-memory
// lengkap dengan field dan type tag-nya.
func attachment(fieldID, typeTag int, forGroup bool, name string) gfModel.DimensionalGroupFieldModel {
	return gfModel.DimensionalGroupFieldModel{
		FieldID:    ptrInt(fieldID),
		IsForGroup: ptrBool(forGroup),
		Field: &fieldModel.FieldModel{
			FieldID:                fieldID,
			FieldName:              ptrStr(name),
			FieldTypeDimensionalID: ptrInt(typeTag),
		},
	}
}

func TestSubmitFormDataDispatchesByKindAndLevel(t *testing.T) {
	db := newTestDB(t)
	svc := NewDataEntryService(db)
	ctx := context.Background()

	fields := []gfModel.DimensionalGroupFieldModel{
		attachment(1, 1, false, "Nama"),      // text, level dimensional
		attachment(2, 2, true, "Kuota"),      // number, level group
		attachment(3, 3, false, "Aktif"),     // boolean, level dimensional
		attachment(4, 6, false, "Referensi"), // id, level dimensional
	}

	result := svc.SubmitFormData(ctx, map[string]any{
		"1": "hello",
		"2": "42.5",
		"3": true,
		"4": "17",
		"5": "", // kosong → dilewati tapi tetap kehitung di totalFields
	}, fields, 10, 20, 99)

	assert.True(t, result.Success)
	assert.Equal(t, 5, result.TotalFields)
	assert.Equal(t, 4, result.SavedFields)
	assert.Equal(t, 0, result.FailedFields)
	assert.Empty(t, result.Errors)

	var text followModel.DimensionalTextFollowModel
	require.NoError(t, db.First(&text).Error)
	assert.Equal(t, 20, *text.DimensionalID)
	assert.Equal(t, 1, *text.FieldID)
	assert.Equal(t, "hello", *text.DimensionalTextFollowValue)
	assert.Equal(t, 99, *text.CreatedBy)

	var num followModel.DimensionalGroupNumberFollowModel
	require.NoError(t, db.First(&num).Error)
	assert.Equal(t, 10, *num.DimensionalGroupID)
	assert.InDelta(t, 42.5, *num.DimensionalGroupNumberFollowValue, 0.001)

	var boolean followModel.DimensionalBooleanFollowModel
	require.NoError(t, db.First(&boolean).Error)
	assert.True(t, *boolean.DimensionalBooleanFollowStat)

	var ref followModel.DimensionalIDFollowModel
	require.NoError(t, db.First(&ref).Error)
	require.NotNil(t, ref.FollowDimensionalID)
	assert.Equal(t, 17, *ref.FollowDimensionalID)

	// level dicatat di result
	for _, r := range result.Results {
		if r.FieldID == "2" {
			assert.Equal(t, "group", r.Type)
		}
		if r.FieldID == "1" {
			assert.Equal(t, "dimensional", r.Type)
		}
	}
}

func TestSubmitFormDataSkipsUnknownField(t *testing.T) {
	db := newTestDB(t)
	svc := NewDataEntryService(db)

	result := svc.SubmitFormData(context.Background(), map[string]any{
		"99": "orphan",
	}, nil, 1, 1, 1)

	assert.True(t, result.Success)
	assert.Equal(t, 1, result.TotalFields)
	assert.Equal(t, 0, result.SavedFields)
	assert.Equal(t, 0, result.FailedFields)
}

func TestSubmitFormDataIsolatesFailures(t *testing.T) {
	db := newTestDB(t)
	svc := NewDataEntryService(db)
	ctx := context.Background()

	// tabel number dihapus supaya insert number gagal
	require.NoError(t, db.Migrator().DropTable("gc_dimensional_number_follows"))

	fields := []gfModel.DimensionalGroupFieldModel{
		attachment(1, 1, false, "Nama"),
		attachment(2, 2, false, "Angka"),
	}

	result := svc.SubmitFormData(ctx, map[string]any{
		"1": "ok",
		"2": 5,
	}, fields, 10, 20, 1)

	assert.False(t, result.Success)
	assert.Equal(t, 2, result.TotalFields)
	assert.Equal(t, 1, result.SavedFields)
	assert.Equal(t, 1, result.FailedFields)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "2", result.Errors[0].FieldID)
	assert.Equal(t, "Angka", result.Errors[0].FieldName)
	assert.NotEmpty(t, result.Errors[0].Error)

	// field yang sukses tetap tersimpan, tidak ada rollback
	var n int64
	require.NoError(t, db.Table("gc_dimensional_text_follows").Count(&n).Error)
	assert.Equal(t, int64(1), n)
}

func TestSubmitFormDataUnknownTypeTagFallsBackToText(t *testing.T) {
	db := newTestDB(t)
	svc := NewDataEntryService(db)

	fields := []gfModel.DimensionalGroupFieldModel{
		attachment(1, 999, false, "Misteri"),
	}
	result := svc.SubmitFormData(context.Background(), map[string]any{"1": "val"}, fields, 1, 2, 1)
	assert.Equal(t, 1, result.SavedFields)

	var text followModel.DimensionalTextFollowModel
	require.NoError(t, db.First(&text).Error)
	assert.Equal(t, "val", *text.DimensionalTextFollowValue)
}

func TestSaveGroupFieldValueRejectsDescription(t *testing.T) {
	db := newTestDB(t)
	svc := NewDataEntryService(db)

	_, err := svc.SaveGroupFieldValue(context.Background(), 1, 1, "x", followModel.KindDescription, 1)
	require.Error(t, err)
}

func TestCoercions(t *testing.T) {
	// angka rusak → 0
	assert.Equal(t, float64(0), coerceNumber("bukan angka"))
	assert.Equal(t, 42.5, coerceNumber("42.5"))
	assert.Equal(t, float64(7), coerceNumber(7))

	// truthiness boolean
	assert.True(t, coerceBool(true))
	assert.False(t, coerceBool("false"))
	assert.True(t, coerceBool("true"))
	assert.True(t, coerceBool("yes")) // string non-kosong yang bukan bool valid
	assert.False(t, coerceBool(0))
	assert.True(t, coerceBool(float64(1)))

	// reference rusak → nil
	assert.Nil(t, coerceReference("abc"))
	require.NotNil(t, coerceReference("12"))
	assert.Equal(t, 12, *coerceReference("12"))
	assert.Equal(t, 3, *coerceReference(float64(3)))

	// semua nilai bisa jadi string
	assert.Equal(t, "12.5", coerceString(12.5))
	assert.Equal(t, "", coerceString(nil))
}
