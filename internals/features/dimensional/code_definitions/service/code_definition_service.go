// file: internals/features/dimensional/code_definitions/service/code_definition_service.go
package service

import (
	"context"
	"log"

	cdModel "dimensiku_backend/internals/features/dimensional/code_definitions/model"
	groupModel "dimensiku_backend/internals/features/dimensional/dimensional_groups/model"
	"dimensiku_backend/internals/repository"

	"gorm.io/gorm"
)

type CodeDefinitionService struct {
	DB *gorm.DB

	codeDefs *repository.TableClient[cdModel.CodeDefinitionModel]
	groups   *repository.TableClient[groupModel.DimensionalGroupModel]
}

func NewCodeDefinitionService(db *gorm.DB) *CodeDefinitionService {
	return &CodeDefinitionService{
		DB:       db,
		codeDefs: repository.NewTableClient[cdModel.CodeDefinitionModel](db),
		groups:   repository.NewTableClient[groupModel.DimensionalGroupModel](db),
	}
}

type CodeDefinitionWithGroups struct {
	cdModel.CodeDefinitionModel
	Groups []groupModel.DimensionalGroupModel `json:"groups"`
}

// GetCodeDefinitionsWithGroups: semua code definition beserta group
// yang di-scope ke masing-masing, group terurut level lalu sort.
func (s *CodeDefinitionService) GetCodeDefinitionsWithGroups(ctx context.Context) []CodeDefinitionWithGroups {
	defs := s.codeDefs.List(ctx, &repository.ListOptions{
		OrderBy:   "code_definition_id",
		Ascending: true,
	})

	out := make([]CodeDefinitionWithGroups, 0, len(defs))
	for _, def := range defs {
		groups := make([]groupModel.DimensionalGroupModel, 0)
		err := s.DB.WithContext(ctx).
			Where("code_definition_id = ?", def.CodeDefinitionID).
			Order("level asc").
			Order("dimensional_group_sort asc").
			Find(&groups).Error
		if err != nil {
			log.Printf("[WARN] muat group code definition %d gagal: %v", def.CodeDefinitionID, err)
			groups = make([]groupModel.DimensionalGroupModel, 0)
		}
		out = append(out, CodeDefinitionWithGroups{CodeDefinitionModel: def, Groups: groups})
	}
	return out
}
