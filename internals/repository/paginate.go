// file: internals/repository/paginate.go
package repository

import (
	"context"
	"sync"
)

type PaginatedResult[T Model] struct {
	Data       []T   `json:"data"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	TotalPages int   `json:"totalPages"`
}

// Paginate menjalankan List dan Count bersamaan lalu merakit window
// halaman: offset = (page-1)*pageSize, totalPages = ceil(total/pageSize).
// Halaman di luar jangkauan tetap mengembalikan total yang benar dengan
// data kosong.
func Paginate[T Model](ctx context.Context, c *TableClient[T], page, pageSize int, opts *ListOptions) PaginatedResult[T] {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}

	listOpts := ListOptions{}
	if opts != nil {
		listOpts = *opts
	}
	listOpts.Limit = pageSize
	listOpts.Offset = (page - 1) * pageSize

	var (
		data  []T
		total int64
		wg    sync.WaitGroup
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		data = c.List(ctx, &listOpts)
	}()
	go func() {
		defer wg.Done()
		var filters map[string]any
		if opts != nil {
			filters = opts.Filters
		}
		total = c.Count(ctx, filters)
	}()
	wg.Wait()

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))

	return PaginatedResult[T]{
		Data:       data,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}
