// file: internals/features/dimensional/dimensionals/service/dimensional_service_test.go
package service

import (
	"context"
	"testing"

	groupModel "dimensiku_backend/internals/features/dimensional/dimensional_groups/model"
	dimModel "dimensiku_backend/internals/features/dimensional/dimensionals/model"
	followModel "dimensiku_backend/internals/features/dimensional/follows/model"

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
		&followModel.DimensionalTextFollowModel{},
		&followModel.DimensionalNumberFollowModel{},
		&followModel.DimensionalBooleanFollowModel{},
		&followModel.DimensionalDateFollowModel{},
		&followModel.DimensionalDescriptionFollowModel{},
		&followModel.DimensionalIDFollowModel{},
	))
	return db
}

func ptrInt(n int) *int       { return &n }
func ptrStr(s string) *string { return &s }

func TestGetDimensionalFollowDataGroupsByKind(t *testing.T) {
	db := newTestDB(t)
	svc := NewDimensionalService(db)

	d := dimModel.DimensionalModel{DimensionalName: ptrStr("d1")}
	require.NoError(t, db.Create(&d).Error)
	other := dimModel.DimensionalModel{DimensionalName: ptrStr("d2")}
	require.NoError(t, db.Create(&other).Error)

	require.NoError(t, db.Create(&followModel.DimensionalTextFollowModel{
		DimensionalID: ptrInt(d.DimensionalID), FieldID: ptrInt(1), DimensionalTextFollowValue: ptrStr("hello"),
	}).Error)
	require.NoError(t, db.Create(&followModel.DimensionalDescriptionFollowModel{
		DimensionalID: ptrInt(d.DimensionalID), FieldID: ptrInt(2), DescriptionValue: ptrStr("panjang"),
	}).Error)
	// milik dimensional lain, tidak boleh kebawa
	require.NoError(t, db.Create(&followModel.DimensionalTextFollowModel{
		DimensionalID: ptrInt(other.DimensionalID), FieldID: ptrInt(1), DimensionalTextFollowValue: ptrStr("lain"),
	}).Error)

	fd := svc.GetDimensionalFollowData(context.Background(), d.DimensionalID)
	require.Len(t, fd.TextFollows, 1)
	assert.Equal(t, "hello", *fd.TextFollows[0].DimensionalTextFollowValue)
	require.Len(t, fd.DescriptionFollows, 1)
	assert.Empty(t, fd.NumberFollows)
	assert.Empty(t, fd.BooleanFollows)
	assert.Empty(t, fd.DateFollows)
	assert.Empty(t, fd.IDFollows)
}

func TestGetDimensionalsWithDetails(t *testing.T) {
	db := newTestDB(t)
	svc := NewDimensionalService(db)
	ctx := context.Background()

	g := groupModel.DimensionalGroupModel{DimensionalGroupName: ptrStr("grup")}
	require.NoError(t, db.Create(&g).Error)

	inGroup := dimModel.DimensionalModel{DimensionalGroupID: ptrInt(g.DimensionalGroupID), DimensionalName: ptrStr("anggota")}
	require.NoError(t, db.Create(&inGroup).Error)
	loose := dimModel.DimensionalModel{DimensionalName: ptrStr("lepas")}
	require.NoError(t, db.Create(&loose).Error)

	require.NoError(t, db.Create(&followModel.DimensionalNumberFollowModel{
		DimensionalID: ptrInt(inGroup.DimensionalID), FieldID: ptrInt(1),
	}).Error)

	// tanpa filter: semua dimensional ikut
	all := svc.GetDimensionalsWithDetails(ctx, nil)
	require.Len(t, all, 2)

	// dengan filter group
	scoped := svc.GetDimensionalsWithDetails(ctx, ptrInt(g.DimensionalGroupID))
	require.Len(t, scoped, 1)
	assert.Equal(t, "anggota", *scoped[0].DimensionalName)
	require.NotNil(t, scoped[0].Group)
	assert.Equal(t, "grup", *scoped[0].Group.DimensionalGroupName)
	assert.Len(t, scoped[0].NumberFollows, 1)

	// dimensional tanpa group → Group nil, tetap muncul di hasil
	for _, item := range all {
		if item.DimensionalName != nil && *item.DimensionalName == "lepas" {
			assert.Nil(t, item.Group)
		}
	}
}
