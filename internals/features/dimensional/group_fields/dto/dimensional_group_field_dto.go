// file: internals/features/dimensional/group_fields/dto/dimensional_group_field_dto.go
package dto

/* =======================================================
   REQUEST DTOs (CREATE / UPDATE)
   ======================================================= */

type CreateDimensionalGroupFieldRequest struct {
	DimensionalGroupID     *int  `json:"dimensional_group_id,omitempty" validate:"omitempty,min=1"`
	FieldID                *int  `json:"field_id,omitempty" validate:"omitempty,min=1"`
	ListDimensionalGroupID *int  `json:"list_dimensional_group_id,omitempty" validate:"omitempty,min=1"`
	IsForGroup             *bool `json:"is_for_group,omitempty"`
	FieldSort              *int  `json:"field_sort,omitempty" validate:"omitempty,min=0"`
}

type UpdateDimensionalGroupFieldRequest struct {
	DimensionalGroupID     *int  `json:"dimensional_group_id,omitempty" validate:"omitempty,min=1"`
	FieldID                *int  `json:"field_id,omitempty" validate:"omitempty,min=1"`
	ListDimensionalGroupID *int  `json:"list_dimensional_group_id,omitempty" validate:"omitempty,min=1"`
	IsForGroup             *bool `json:"is_for_group,omitempty"`
	FieldSort              *int  `json:"field_sort,omitempty" validate:"omitempty,min=0"`
}

func (r *UpdateDimensionalGroupFieldRequest) ToUpdates() map[string]interface{} {
	up := make(map[string]interface{})
	if r.DimensionalGroupID != nil {
		up["dimensional_group_id"] = *r.DimensionalGroupID
	}
	if r.FieldID != nil {
		up["field_id"] = *r.FieldID
	}
	if r.ListDimensionalGroupID != nil {
		up["list_dimensional_group_id"] = *r.ListDimensionalGroupID
	}
	if r.IsForGroup != nil {
		up["is_for_group"] = *r.IsForGroup
	}
	if r.FieldSort != nil {
		up["field_sort"] = *r.FieldSort
	}
	return up
}

/* =======================================================
   QUERY FILTER DTO
   ======================================================= */

type ListDimensionalGroupFieldsQuery struct {
	DimensionalGroupID *int  `query:"dimensional_group_id"`
	FieldID            *int  `query:"field_id"`
	IsForGroup         *bool `query:"is_for_group"`
}
