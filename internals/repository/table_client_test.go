// file: internals/repository/table_client_test.go
package repository_test

import (
	"context"
	"testing"
	"time"

	cdModel "dimensiku_backend/internals/features/dimensional/code_definitions/model"
	dimModel "dimensiku_backend/internals/features/dimensional/dimensionals/model"
	"dimensiku_backend/internals/repository"

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
		&dimModel.DimensionalModel{},
	))
	return db
}

func ptrStr(s string) *string { return &s }
func ptrInt(n int) *int       { return &n }
func ptrBool(b bool) *bool    { return &b }

func TestPrimaryKeyColumn(t *testing.T) {
	// tabel terdaftar pakai registri
	assert.Equal(t, "dimensional_group_id", repository.PrimaryKeyColumn("gc_dimensional_groups"))
	assert.Equal(t, "code_definition_id", repository.PrimaryKeyColumn("gc_code_definition"))
	assert.Equal(t, "dimensional_id_follow_id", repository.PrimaryKeyColumn("gc_dimensional_id_follows"))

	// tabel tak terdaftar jatuh ke konvensi strip-prefix + trim-s + _id
	assert.Equal(t, "widget_id", repository.PrimaryKeyColumn("gc_widgets"))
}

func TestCreateRoundTripAndDateStamp(t *testing.T) {
	db := newTestDB(t)
	client := repository.NewTableClient[cdModel.CodeDefinitionModel](db)
	ctx := context.Background()

	row := cdModel.CodeDefinitionModel{
		CodeDefinitionCode: ptrStr("GC001"),
		SystemConfigLevel:  ptrInt(1),
		IsAvailable:        ptrBool(true),
	}
	row.CreatedBy = ptrInt(7)

	created, err := client.Create(ctx, &row)
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.Greater(t, created.CodeDefinitionID, 0)
	assert.Equal(t, "GC001", *created.CodeDefinitionCode)
	assert.Equal(t, 7, *created.CreatedBy)

	// created_at terisi otomatis, dipotong ke tanggal
	stamped := time.Time(created.CreatedAt)
	require.False(t, stamped.IsZero())
	assert.Equal(t, 0, stamped.Hour())
	assert.Equal(t, 0, stamped.Minute())

	// re-read pakai GetByID harus identik
	got, err := client.GetByID(ctx, created.CodeDefinitionID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, created.CodeDefinitionID, got.CodeDefinitionID)
}

func TestGetByIDMissingReturnsNilNil(t *testing.T) {
	db := newTestDB(t)
	client := repository.NewTableClient[cdModel.CodeDefinitionModel](db)

	got, err := client.GetByID(context.Background(), 999)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUpdateStampsUpdatedBy(t *testing.T) {
	db := newTestDB(t)
	client := repository.NewTableClient[cdModel.CodeDefinitionModel](db)
	ctx := context.Background()

	created, err := client.Create(ctx, &cdModel.CodeDefinitionModel{
		CodeDefinitionCode: ptrStr("OLD"),
	})
	require.NoError(t, err)

	updated, err := client.Update(ctx, created.CodeDefinitionID, map[string]any{
		"code_definition_code": "NEW",
	}, 42)
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.Equal(t, "NEW", *updated.CodeDefinitionCode)
	require.NotNil(t, updated.UpdatedBy)
	assert.Equal(t, 42, *updated.UpdatedBy)
}

func TestUpdateMissingReturnsNil(t *testing.T) {
	db := newTestDB(t)
	client := repository.NewTableClient[cdModel.CodeDefinitionModel](db)

	updated, err := client.Update(context.Background(), 999, map[string]any{
		"code_definition_code": "X",
	}, 1)
	require.NoError(t, err)
	assert.Nil(t, updated)
}

func TestDeleteThenGetByID(t *testing.T) {
	db := newTestDB(t)
	client := repository.NewTableClient[cdModel.CodeDefinitionModel](db)
	ctx := context.Background()

	created, err := client.Create(ctx, &cdModel.CodeDefinitionModel{
		CodeDefinitionCode: ptrStr("DEL"),
	})
	require.NoError(t, err)

	ok, err := client.Delete(ctx, created.CodeDefinitionID)
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := client.GetByID(ctx, created.CodeDefinitionID)
	require.NoError(t, err)
	assert.Nil(t, got)

	// hapus row yang tidak ada → false tanpa error
	ok, err = client.Delete(ctx, 999)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestListFiltersAndOrder(t *testing.T) {
	db := newTestDB(t)
	client := repository.NewTableClient[dimModel.DimensionalModel](db)
	ctx := context.Background()

	seed := []dimModel.DimensionalModel{
		{DimensionalGroupID: ptrInt(1), DimensionalName: ptrStr("b"), DimensionalSort: ptrInt(2), IsActive: ptrBool(true)},
		{DimensionalGroupID: ptrInt(1), DimensionalName: ptrStr("a"), DimensionalSort: ptrInt(1), IsActive: ptrBool(true)},
		{DimensionalGroupID: ptrInt(2), DimensionalName: ptrStr("c"), DimensionalSort: ptrInt(3), IsActive: ptrBool(false)},
	}
	for i := range seed {
		_, err := client.Create(ctx, &seed[i])
		require.NoError(t, err)
	}

	rows := client.List(ctx, &repository.ListOptions{
		Filters:   map[string]any{"dimensional_group_id": 1},
		OrderBy:   "dimensional_sort",
		Ascending: true,
	})
	require.Len(t, rows, 2)
	assert.Equal(t, "a", *rows[0].DimensionalName)
	assert.Equal(t, "b", *rows[1].DimensionalName)

	// filter nil dilewati, bukan jadi IS NULL
	rows = client.List(ctx, &repository.ListOptions{
		Filters: map[string]any{"dimensional_group_id": nil},
	})
	assert.Len(t, rows, 3)

	assert.Equal(t, int64(2), client.Count(ctx, map[string]any{"dimensional_group_id": 1}))
	assert.Equal(t, int64(3), client.Count(ctx, nil))
}

func TestListSwallowsQueryErrors(t *testing.T) {
	db := newTestDB(t)
	client := repository.NewTableClient[dimModel.DimensionalModel](db)
	ctx := context.Background()

	_, err := client.Create(ctx, &dimModel.DimensionalModel{DimensionalName: ptrStr("x")})
	require.NoError(t, err)

	// kolom filter tidak ada → query gagal → slice kosong, bukan panic
	rows := client.List(ctx, &repository.ListOptions{
		Filters: map[string]any{"no_such_column": 1},
	})
	assert.Empty(t, rows)

	assert.Equal(t, int64(0), client.Count(ctx, map[string]any{"no_such_column": 1}))
}
