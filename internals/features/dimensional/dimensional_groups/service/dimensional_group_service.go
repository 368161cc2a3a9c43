// file: internals/features/dimensional/dimensional_groups/service/dimensional_group_service.go
package service

import (
	"context"
	"log"
	"sync"

	cdModel "dimensiku_backend/internals/features/dimensional/code_definitions/model"
	groupModel "dimensiku_backend/internals/features/dimensional/dimensional_groups/model"
	dimModel "dimensiku_backend/internals/features/dimensional/dimensionals/model"
	followModel "dimensiku_backend/internals/features/dimensional/follows/model"
	gfModel "dimensiku_backend/internals/features/dimensional/group_fields/model"
	"dimensiku_backend/internals/repository"

	"gorm.io/gorm"
)

type DimensionalGroupService struct {
	DB *gorm.DB

	groups       *repository.TableClient[groupModel.DimensionalGroupModel]
	codeDefs     *repository.TableClient[cdModel.CodeDefinitionModel]
	dimensionals *repository.TableClient[dimModel.DimensionalModel]

	grpBoolFollows *repository.TableClient[followModel.DimensionalGroupBooleanFollowModel]
	grpDateFollows *repository.TableClient[followModel.DimensionalGroupDateFollowModel]
	grpIDFollows   *repository.TableClient[followModel.DimensionalGroupIDFollowModel]
	grpNumFollows  *repository.TableClient[followModel.DimensionalGroupNumberFollowModel]
	grpTextFollows *repository.TableClient[followModel.DimensionalGroupTextFollowModel]
}

func NewDimensionalGroupService(db *gorm.DB) *DimensionalGroupService {
	return &DimensionalGroupService{
		DB:             db,
		groups:         repository.NewTableClient[groupModel.DimensionalGroupModel](db),
		codeDefs:       repository.NewTableClient[cdModel.CodeDefinitionModel](db),
		dimensionals:   repository.NewTableClient[dimModel.DimensionalModel](db),
		grpBoolFollows: repository.NewTableClient[followModel.DimensionalGroupBooleanFollowModel](db),
		grpDateFollows: repository.NewTableClient[followModel.DimensionalGroupDateFollowModel](db),
		grpIDFollows:   repository.NewTableClient[followModel.DimensionalGroupIDFollowModel](db),
		grpNumFollows:  repository.NewTableClient[followModel.DimensionalGroupNumberFollowModel](db),
		grpTextFollows: repository.NewTableClient[followModel.DimensionalGroupTextFollowModel](db),
	}
}

/* =========================================================
 * HIERARKI
 * ========================================================= */

// GetAll mengembalikan semua group terurut level lalu sort index.
func (s *DimensionalGroupService) GetAll(ctx context.Context) ([]groupModel.DimensionalGroupModel, error) {
	rows := make([]groupModel.DimensionalGroupModel, 0)
	err := s.DB.WithContext(ctx).
		Table("gc_dimensional_groups").
		Order("level asc").
		Order("dimensional_group_sort asc").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// GetByLevel: group aktif di satu level hierarki, terurut sort index.
func (s *DimensionalGroupService) GetByLevel(ctx context.Context, level int) []groupModel.DimensionalGroupModel {
	return s.groups.List(ctx, &repository.ListOptions{
		Filters:   map[string]any{"level": level, "is_active": true},
		OrderBy:   "dimensional_group_sort",
		Ascending: true,
	})
}

// GetChildren: anak langsung sebuah group.
func (s *DimensionalGroupService) GetChildren(ctx context.Context, parentID int) []groupModel.DimensionalGroupModel {
	return s.groups.List(ctx, &repository.ListOptions{
		Filters:   map[string]any{"dimensional_group_father_id": parentID},
		OrderBy:   "dimensional_group_sort",
		Ascending: true,
	})
}

/* =========================================================
 * WITH DETAILS
 * ========================================================= */

type GroupFilters struct {
	CodeDefinitionID *int
	IsActive         *bool
}

type DimensionalGroupWithDetails struct {
	groupModel.DimensionalGroupModel
	CodeDefinition *cdModel.CodeDefinitionModel         `json:"code_definition"`
	Dimensionals   []dimModel.DimensionalModel          `json:"dimensionals"`
	Fields         []gfModel.DimensionalGroupFieldModel `json:"fields"`
}

// GetDimensionalGroupsWithDetails: list group sesuai filter equality
// lalu enrich per group secara sekuensial (membatasi beban backend).
// Gagal enrich satu group menurunkan group itu jadi relasi kosong.
func (s *DimensionalGroupService) GetDimensionalGroupsWithDetails(ctx context.Context, filters GroupFilters) []DimensionalGroupWithDetails {
	filterMap := map[string]any{}
	if filters.CodeDefinitionID != nil {
		filterMap["code_definition_id"] = *filters.CodeDefinitionID
	}
	if filters.IsActive != nil {
		filterMap["is_active"] = *filters.IsActive
	}

	groups := s.groups.List(ctx, &repository.ListOptions{Filters: filterMap})
	enriched := make([]DimensionalGroupWithDetails, 0, len(groups))
	for _, g := range groups {
		enriched = append(enriched, s.enrichGroup(ctx, g))
	}
	return enriched
}

// GetDimensionalGroupByID mengembalikan satu group beserta relasinya;
// nil kalau tidak ada.
func (s *DimensionalGroupService) GetDimensionalGroupByID(ctx context.Context, id int) (*DimensionalGroupWithDetails, error) {
	g, err := s.groups.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, nil
	}
	detail := s.enrichGroup(ctx, *g)
	return &detail, nil
}

func (s *DimensionalGroupService) enrichGroup(ctx context.Context, g groupModel.DimensionalGroupModel) DimensionalGroupWithDetails {
	detail := DimensionalGroupWithDetails{
		DimensionalGroupModel: g,
		Dimensionals:          make([]dimModel.DimensionalModel, 0),
		Fields:                make([]gfModel.DimensionalGroupFieldModel, 0),
	}
	if g.CodeDefinitionID != nil {
		if cd, err := s.codeDefs.GetByID(ctx, *g.CodeDefinitionID); err == nil {
			detail.CodeDefinition = cd
		}
	}
	detail.Dimensionals = s.dimensionals.List(ctx, &repository.ListOptions{
		Filters: map[string]any{"dimensional_group_id": g.DimensionalGroupID},
	})
	detail.Fields = s.ListGroupFields(ctx, g.DimensionalGroupID)
	return detail
}

// ListGroupFields mengembalikan attachment field sebuah group berikut
// definisi Field-nya, terurut field_sort.
func (s *DimensionalGroupService) ListGroupFields(ctx context.Context, groupID int) []gfModel.DimensionalGroupFieldModel {
	rows := make([]gfModel.DimensionalGroupFieldModel, 0)
	err := s.DB.WithContext(ctx).
		Preload("Field").
		Where("dimensional_group_id = ?", groupID).
		Order("field_sort asc").
		Find(&rows).Error
	if err != nil {
		log.Printf("[WARN] list field group %d gagal: %v", groupID, err)
		return []gfModel.DimensionalGroupFieldModel{}
	}
	return rows
}

/* =========================================================
 * GROUP FOLLOW DATA AGGREGATE
 * ========================================================= */

type GroupFollowData struct {
	BooleanFollows []followModel.DimensionalGroupBooleanFollowModel `json:"booleanFollows"`
	DateFollows    []followModel.DimensionalGroupDateFollowModel    `json:"dateFollows"`
	IDFollows      []followModel.DimensionalGroupIDFollowModel      `json:"idFollows"`
	NumberFollows  []followModel.DimensionalGroupNumberFollowModel  `json:"numberFollows"`
	TextFollows    []followModel.DimensionalGroupTextFollowModel    `json:"textFollows"`
}

// GetDimensionalGroupFollowData menarik kelima jenis follow level
// group secara paralel dengan toleransi gagal per jenis.
func (s *DimensionalGroupService) GetDimensionalGroupFollowData(ctx context.Context, groupID int) GroupFollowData {
	filter := map[string]any{"dimensional_group_id": groupID}

	var fd GroupFollowData
	var wg sync.WaitGroup
	wg.Add(5)
	go func() {
		defer wg.Done()
		fd.BooleanFollows = s.grpBoolFollows.List(ctx, &repository.ListOptions{Filters: filter})
	}()
	go func() {
		defer wg.Done()
		fd.DateFollows = s.grpDateFollows.List(ctx, &repository.ListOptions{Filters: filter})
	}()
	go func() {
		defer wg.Done()
		fd.IDFollows = s.grpIDFollows.List(ctx, &repository.ListOptions{Filters: filter})
	}()
	go func() {
		defer wg.Done()
		fd.NumberFollows = s.grpNumFollows.List(ctx, &repository.ListOptions{Filters: filter})
	}()
	go func() {
		defer wg.Done()
		fd.TextFollows = s.grpTextFollows.List(ctx, &repository.ListOptions{Filters: filter})
	}()
	wg.Wait()
	return fd
}
