// file: internals/features/dimensional/dimensionals/dto/dimensional_dto.go
package dto

import "strings"

/* =======================================================
   REQUEST DTOs (CREATE / UPDATE)
   ======================================================= */

type CreateDimensionalRequest struct {
	DimensionalGroupID  *int    `json:"dimensional_group_id,omitempty" validate:"omitempty,min=1"`
	DimensionalName     *string `json:"dimensional_name,omitempty" validate:"omitempty,max=100"`
	IsActive            *bool   `json:"is_active,omitempty"`
	Level               *int    `json:"level,omitempty" validate:"omitempty,min=0"`
	DimensionalFatherID *int    `json:"dimensional_father_id,omitempty" validate:"omitempty,min=1"`
	DimensionalSort     *int    `json:"dimensional_sort,omitempty" validate:"omitempty,min=0"`
}

func (r *CreateDimensionalRequest) Normalize() {
	if r.DimensionalName != nil {
		v := strings.TrimSpace(*r.DimensionalName)
		r.DimensionalName = &v
	}
}

type UpdateDimensionalRequest struct {
	DimensionalGroupID  *int    `json:"dimensional_group_id,omitempty" validate:"omitempty,min=1"`
	DimensionalName     *string `json:"dimensional_name,omitempty" validate:"omitempty,max=100"`
	IsActive            *bool   `json:"is_active,omitempty"`
	Level               *int    `json:"level,omitempty" validate:"omitempty,min=0"`
	DimensionalFatherID *int    `json:"dimensional_father_id,omitempty" validate:"omitempty,min=1"`
	DimensionalSort     *int    `json:"dimensional_sort,omitempty" validate:"omitempty,min=0"`
}

func (r *UpdateDimensionalRequest) ToUpdates() map[string]interface{} {
	up := make(map[string]interface{})
	if r.DimensionalGroupID != nil {
		up["dimensional_group_id"] = *r.DimensionalGroupID
	}
	if r.DimensionalName != nil {
		up["dimensional_name"] = strings.TrimSpace(*r.DimensionalName)
	}
	if r.IsActive != nil {
		up["is_active"] = *r.IsActive
	}
	if r.Level != nil {
		up["level"] = *r.Level
	}
	if r.DimensionalFatherID != nil {
		up["dimensional_father_id"] = *r.DimensionalFatherID
	}
	if r.DimensionalSort != nil {
		up["dimensional_sort"] = *r.DimensionalSort
	}
	return up
}

/* =======================================================
   QUERY FILTER DTO
   ======================================================= */

type ListDimensionalsQuery struct {
	DimensionalGroupID *int `query:"dimensional_group_id"`
	Level              *int `query:"level"`
}
