// file: internals/repository/paginate_test.go
package repository_test

import (
	"context"
	"fmt"
	"testing"

	dimModel "dimensiku_backend/internals/features/dimensional/dimensionals/model"
	"dimensiku_backend/internals/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaginateWindows(t *testing.T) {
	db := newTestDB(t)
	client := repository.NewTableClient[dimModel.DimensionalModel](db)
	ctx := context.Background()

	for i := 1; i <= 25; i++ {
		name := fmt.Sprintf("dim-%02d", i)
		row := dimModel.DimensionalModel{
			DimensionalName: &name,
			DimensionalSort: ptrInt(i),
		}
		_, err := client.Create(ctx, &row)
		require.NoError(t, err)
	}

	opts := &repository.ListOptions{OrderBy: "dimensional_sort", Ascending: true}

	page1 := repository.Paginate(ctx, client, 1, 10, opts)
	assert.Len(t, page1.Data, 10)
	assert.Equal(t, int64(25), page1.Total)
	assert.Equal(t, 3, page1.TotalPages)
	assert.Equal(t, "dim-01", *page1.Data[0].DimensionalName)

	page3 := repository.Paginate(ctx, client, 3, 10, opts)
	assert.Len(t, page3.Data, 5)
	assert.Equal(t, "dim-21", *page3.Data[0].DimensionalName)

	// halaman melewati data terakhir: kosong tapi total tetap benar
	page9 := repository.Paginate(ctx, client, 9, 10, opts)
	assert.Empty(t, page9.Data)
	assert.Equal(t, int64(25), page9.Total)
	assert.Equal(t, 3, page9.TotalPages)
	assert.Equal(t, 9, page9.Page)
}

func TestPaginateClampsInvalidInput(t *testing.T) {
	db := newTestDB(t)
	client := repository.NewTableClient[dimModel.DimensionalModel](db)
	ctx := context.Background()

	name := "only"
	_, err := client.Create(ctx, &dimModel.DimensionalModel{DimensionalName: &name})
	require.NoError(t, err)

	res := repository.Paginate(ctx, client, 0, -5, nil)
	assert.Equal(t, 1, res.Page)
	assert.Equal(t, 10, res.PageSize)
	assert.Len(t, res.Data, 1)
	assert.Equal(t, 1, res.TotalPages)
}

func TestPaginateFilterScopesTotal(t *testing.T) {
	db := newTestDB(t)
	client := repository.NewTableClient[dimModel.DimensionalModel](db)
	ctx := context.Background()

	for i := 0; i < 6; i++ {
		group := 1
		if i >= 4 {
			group = 2
		}
		row := dimModel.DimensionalModel{DimensionalGroupID: ptrInt(group)}
		_, err := client.Create(ctx, &row)
		require.NoError(t, err)
	}

	res := repository.Paginate(ctx, client, 1, 3, &repository.ListOptions{
		Filters: map[string]any{"dimensional_group_id": 1},
	})
	assert.Len(t, res.Data, 3)
	assert.Equal(t, int64(4), res.Total)
	assert.Equal(t, 2, res.TotalPages)
}
