// file: internals/features/dimensional/dimensional_groups/service/dimensional_group_service_test.go
package service

import (
	"context"
	"testing"

	cdModel "dimensiku_backend/internals/features/dimensional/code_definitions/model"
	groupModel "dimensiku_backend/internals/features/dimensional/dimensional_groups/model"
	dimModel "dimensiku_backend/internals/features/dimensional/dimensionals/model"
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
		&cdModel.CodeDefinitionModel{},
		&groupModel.DimensionalGroupModel{},
		&dimModel.DimensionalModel{},
		&fieldModel.FieldModel{},
		&gfModel.DimensionalGroupFieldModel{},
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

func seedGroup(t *testing.T, db *gorm.DB, g *groupModel.DimensionalGroupModel) *groupModel.DimensionalGroupModel {
	t.Helper()
	require.NoError(t, db.Create(g).Error)
	return g
}

func TestGetAllOrdersByLevelThenSort(t *testing.T) {
	db := newTestDB(t)
	svc := NewDimensionalGroupService(db)

	seedGroup(t, db, &groupModel.DimensionalGroupModel{DimensionalGroupName: ptrStr("lv1-b"), Level: ptrInt(1), DimensionalGroupSort: ptrInt(2)})
	seedGroup(t, db, &groupModel.DimensionalGroupModel{DimensionalGroupName: ptrStr("lv0"), Level: ptrInt(0), DimensionalGroupSort: ptrInt(1)})
	seedGroup(t, db, &groupModel.DimensionalGroupModel{DimensionalGroupName: ptrStr("lv1-a"), Level: ptrInt(1), DimensionalGroupSort: ptrInt(1)})

	rows, err := svc.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "lv0", *rows[0].DimensionalGroupName)
	assert.Equal(t, "lv1-a", *rows[1].DimensionalGroupName)
	assert.Equal(t, "lv1-b", *rows[2].DimensionalGroupName)
}

func TestGetByLevelOnlyActive(t *testing.T) {
	db := newTestDB(t)
	svc := NewDimensionalGroupService(db)

	seedGroup(t, db, &groupModel.DimensionalGroupModel{DimensionalGroupName: ptrStr("aktif"), Level: ptrInt(1), IsActive: ptrBool(true), DimensionalGroupSort: ptrInt(1)})
	seedGroup(t, db, &groupModel.DimensionalGroupModel{DimensionalGroupName: ptrStr("nonaktif"), Level: ptrInt(1), IsActive: ptrBool(false), DimensionalGroupSort: ptrInt(2)})
	seedGroup(t, db, &groupModel.DimensionalGroupModel{DimensionalGroupName: ptrStr("lv2"), Level: ptrInt(2), IsActive: ptrBool(true)})

	rows := svc.GetByLevel(context.Background(), 1)
	require.Len(t, rows, 1)
	assert.Equal(t, "aktif", *rows[0].DimensionalGroupName)
}

func TestGetChildren(t *testing.T) {
	db := newTestDB(t)
	svc := NewDimensionalGroupService(db)

	parent := seedGroup(t, db, &groupModel.DimensionalGroupModel{DimensionalGroupName: ptrStr("father")})
	seedGroup(t, db, &groupModel.DimensionalGroupModel{DimensionalGroupName: ptrStr("child-2"), DimensionalGroupFatherID: ptrInt(parent.DimensionalGroupID), DimensionalGroupSort: ptrInt(2)})
	seedGroup(t, db, &groupModel.DimensionalGroupModel{DimensionalGroupName: ptrStr("child-1"), DimensionalGroupFatherID: ptrInt(parent.DimensionalGroupID), DimensionalGroupSort: ptrInt(1)})
	seedGroup(t, db, &groupModel.DimensionalGroupModel{DimensionalGroupName: ptrStr("stranger")})

	rows := svc.GetChildren(context.Background(), parent.DimensionalGroupID)
	require.Len(t, rows, 2)
	assert.Equal(t, "child-1", *rows[0].DimensionalGroupName)
	assert.Equal(t, "child-2", *rows[1].DimensionalGroupName)
}

func TestGetDimensionalGroupsWithDetails(t *testing.T) {
	db := newTestDB(t)
	svc := NewDimensionalGroupService(db)
	ctx := context.Background()

	cd := cdModel.CodeDefinitionModel{CodeDefinitionCode: ptrStr("CFG")}
	require.NoError(t, db.Create(&cd).Error)

	g := seedGroup(t, db, &groupModel.DimensionalGroupModel{
		DimensionalGroupName: ptrStr("grup"),
		CodeDefinitionID:     ptrInt(cd.CodeDefinitionID),
		IsActive:             ptrBool(true),
	})

	d := dimModel.DimensionalModel{DimensionalGroupID: ptrInt(g.DimensionalGroupID), DimensionalName: ptrStr("dim")}
	require.NoError(t, db.Create(&d).Error)

	f := fieldModel.FieldModel{FieldName: ptrStr("Nama"), FieldTypeDimensionalID: ptrInt(1)}
	require.NoError(t, db.Create(&f).Error)
	gf := gfModel.DimensionalGroupFieldModel{
		DimensionalGroupID: ptrInt(g.DimensionalGroupID),
		FieldID:            ptrInt(f.FieldID),
		IsForGroup:         ptrBool(false),
		FieldSort:          ptrInt(1),
	}
	require.NoError(t, db.Create(&gf).Error)

	details := svc.GetDimensionalGroupsWithDetails(ctx, GroupFilters{IsActive: ptrBool(true)})
	require.Len(t, details, 1)

	detail := details[0]
	require.NotNil(t, detail.CodeDefinition)
	assert.Equal(t, "CFG", *detail.CodeDefinition.CodeDefinitionCode)
	require.Len(t, detail.Dimensionals, 1)
	assert.Equal(t, "dim", *detail.Dimensionals[0].DimensionalName)
	require.Len(t, detail.Fields, 1)
	require.NotNil(t, detail.Fields[0].Field)
	assert.Equal(t, "Nama", *detail.Fields[0].Field.FieldName)
}

func TestGetDimensionalGroupByIDMissing(t *testing.T) {
	db := newTestDB(t)
	svc := NewDimensionalGroupService(db)

	detail, err := svc.GetDimensionalGroupByID(context.Background(), 999)
	require.NoError(t, err)
	assert.Nil(t, detail)
}

func TestGroupWithoutRelationsDegradesToEmpty(t *testing.T) {
	db := newTestDB(t)
	svc := NewDimensionalGroupService(db)

	g := seedGroup(t, db, &groupModel.DimensionalGroupModel{DimensionalGroupName: ptrStr("kosong")})

	detail, err := svc.GetDimensionalGroupByID(context.Background(), g.DimensionalGroupID)
	require.NoError(t, err)
	require.NotNil(t, detail)
	assert.Nil(t, detail.CodeDefinition)
	assert.Empty(t, detail.Dimensionals)
	assert.Empty(t, detail.Fields)
}

func TestGetDimensionalGroupFollowData(t *testing.T) {
	db := newTestDB(t)
	svc := NewDimensionalGroupService(db)

	g := seedGroup(t, db, &groupModel.DimensionalGroupModel{DimensionalGroupName: ptrStr("g")})
	other := seedGroup(t, db, &groupModel.DimensionalGroupModel{DimensionalGroupName: ptrStr("other")})

	require.NoError(t, db.Create(&followModel.DimensionalGroupTextFollowModel{
		DimensionalGroupID:              ptrInt(g.DimensionalGroupID),
		FieldID:                         ptrInt(1),
		DimensionalGroupTextFollowValue: ptrStr("v"),
	}).Error)
	require.NoError(t, db.Create(&followModel.DimensionalGroupNumberFollowModel{
		DimensionalGroupID: ptrInt(other.DimensionalGroupID),
		FieldID:            ptrInt(2),
	}).Error)

	fd := svc.GetDimensionalGroupFollowData(context.Background(), g.DimensionalGroupID)
	require.Len(t, fd.TextFollows, 1)
	assert.Equal(t, "v", *fd.TextFollows[0].DimensionalGroupTextFollowValue)
	assert.Empty(t, fd.NumberFollows)
	assert.Empty(t, fd.BooleanFollows)
	assert.Empty(t, fd.DateFollows)
	assert.Empty(t, fd.IDFollows)
}
