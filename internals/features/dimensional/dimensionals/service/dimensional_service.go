// file: internals/features/dimensional/dimensionals/service/dimensional_service.go
package service

import (
	"context"
	"sync"

	groupModel "dimensiku_backend/internals/features/dimensional/dimensional_groups/model"
	dimModel "dimensiku_backend/internals/features/dimensional/dimensionals/model"
	followModel "dimensiku_backend/internals/features/dimensional/follows/model"
	"dimensiku_backend/internals/repository"

	"gorm.io/gorm"
)

type DimensionalService struct {
	DB *gorm.DB

	dimensionals *repository.TableClient[dimModel.DimensionalModel]
	groups       *repository.TableClient[groupModel.DimensionalGroupModel]

	boolFollows *repository.TableClient[followModel.DimensionalBooleanFollowModel]
	dateFollows *repository.TableClient[followModel.DimensionalDateFollowModel]
	descFollows *repository.TableClient[followModel.DimensionalDescriptionFollowModel]
	numFollows  *repository.TableClient[followModel.DimensionalNumberFollowModel]
	textFollows *repository.TableClient[followModel.DimensionalTextFollowModel]
	idFollows   *repository.TableClient[followModel.DimensionalIDFollowModel]
}

func NewDimensionalService(db *gorm.DB) *DimensionalService {
	return &DimensionalService{
		DB:           db,
		dimensionals: repository.NewTableClient[dimModel.DimensionalModel](db),
		groups:       repository.NewTableClient[groupModel.DimensionalGroupModel](db),
		boolFollows:  repository.NewTableClient[followModel.DimensionalBooleanFollowModel](db),
		dateFollows:  repository.NewTableClient[followModel.DimensionalDateFollowModel](db),
		descFollows:  repository.NewTableClient[followModel.DimensionalDescriptionFollowModel](db),
		numFollows:   repository.NewTableClient[followModel.DimensionalNumberFollowModel](db),
		textFollows:  repository.NewTableClient[followModel.DimensionalTextFollowModel](db),
		idFollows:    repository.NewTableClient[followModel.DimensionalIDFollowModel](db),
	}
}

/* =========================================================
 * FOLLOW DATA AGGREGATE
 * ========================================================= */

type DimensionalFollowData struct {
	BooleanFollows     []followModel.DimensionalBooleanFollowModel     `json:"booleanFollows"`
	DateFollows        []followModel.DimensionalDateFollowModel        `json:"dateFollows"`
	DescriptionFollows []followModel.DimensionalDescriptionFollowModel `json:"descriptionFollows"`
	NumberFollows      []followModel.DimensionalNumberFollowModel      `json:"numberFollows"`
	TextFollows        []followModel.DimensionalTextFollowModel        `json:"textFollows"`
	IDFollows          []followModel.DimensionalIDFollowModel          `json:"idFollows"`
}

// GetDimensionalFollowData menarik keenam jenis follow untuk satu
// dimensional secara paralel. Sub-fetch yang gagal turun jadi list
// kosong (sudah ditelan di layer List), tidak menggagalkan agregat.
func (s *DimensionalService) GetDimensionalFollowData(ctx context.Context, dimensionalID int) DimensionalFollowData {
	filter := map[string]any{"dimensional_id": dimensionalID}

	var fd DimensionalFollowData
	var wg sync.WaitGroup
	wg.Add(6)
	go func() {
		defer wg.Done()
		fd.BooleanFollows = s.boolFollows.List(ctx, &repository.ListOptions{Filters: filter})
	}()
	go func() {
		defer wg.Done()
		fd.DateFollows = s.dateFollows.List(ctx, &repository.ListOptions{Filters: filter})
	}()
	go func() {
		defer wg.Done()
		fd.DescriptionFollows = s.descFollows.List(ctx, &repository.ListOptions{Filters: filter})
	}()
	go func() {
		defer wg.Done()
		fd.NumberFollows = s.numFollows.List(ctx, &repository.ListOptions{Filters: filter})
	}()
	go func() {
		defer wg.Done()
		fd.TextFollows = s.textFollows.List(ctx, &repository.ListOptions{Filters: filter})
	}()
	go func() {
		defer wg.Done()
		fd.IDFollows = s.idFollows.List(ctx, &repository.ListOptions{Filters: filter})
	}()
	wg.Wait()
	return fd
}

/* =========================================================
 * WITH DETAILS
 * ========================================================= */

type DimensionalWithDetails struct {
	dimModel.DimensionalModel
	Group *groupModel.DimensionalGroupModel `json:"group"`
	DimensionalFollowData
}

// GetDimensionalsWithDetails: list dimensional (opsional difilter
// group) lalu enrich satu-satu secara sekuensial. Gagal enrich satu
// dimensional menurunkannya jadi relasi kosong, bukan drop dari hasil.
func (s *DimensionalService) GetDimensionalsWithDetails(ctx context.Context, groupID *int) []DimensionalWithDetails {
	opts := &repository.ListOptions{}
	if groupID != nil {
		opts.Filters = map[string]any{"dimensional_group_id": *groupID}
	}

	dims := s.dimensionals.List(ctx, opts)
	enriched := make([]DimensionalWithDetails, 0, len(dims))
	for _, d := range dims {
		item := DimensionalWithDetails{DimensionalModel: d}
		if d.DimensionalGroupID != nil {
			// error di sini menurunkan group jadi nil, batch jalan terus
			if g, err := s.groups.GetByID(ctx, *d.DimensionalGroupID); err == nil {
				item.Group = g
			}
		}
		item.DimensionalFollowData = s.GetDimensionalFollowData(ctx, d.DimensionalID)
		enriched = append(enriched, item)
	}
	return enriched
}
