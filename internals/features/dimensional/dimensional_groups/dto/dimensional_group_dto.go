// file: internals/features/dimensional/dimensional_groups/dto/dimensional_group_dto.go
package dto

import "strings"

/* =======================================================
   REQUEST DTOs (CREATE / UPDATE)
   ======================================================= */

type CreateDimensionalGroupRequest struct {
	CodeDefinitionID            *int    `json:"code_definition_id,omitempty" validate:"omitempty,min=1"`
	DimensionalGroupName        *string `json:"dimensional_group_name,omitempty" validate:"omitempty,max=100"`
	DimensionalGroupDescription *string `json:"dimensional_group_description,omitempty"`

	BooleanFlowsCount *int `json:"boolean_flows_count,omitempty" validate:"omitempty,min=0"`
	TextFlowsCount    *int `json:"text_flows_count,omitempty" validate:"omitempty,min=0"`
	NumberFlowsCount  *int `json:"number_flows_count,omitempty" validate:"omitempty,min=0"`
	DateFlowsCount    *int `json:"date_flows_count,omitempty" validate:"omitempty,min=0"`
	IDFlowsCount      *int `json:"id_flows_count,omitempty" validate:"omitempty,min=0"`

	DimensionalBooleanFlowsCount     *int `json:"dimensional_boolean_flows_count,omitempty" validate:"omitempty,min=0"`
	DimensionalTextFlowsCount        *int `json:"dimensional_text_flows_count,omitempty" validate:"omitempty,min=0"`
	DimensionalNumberFlowsCount      *int `json:"dimensional_number_flows_count,omitempty" validate:"omitempty,min=0"`
	DimensionalDateFlowsCount        *int `json:"dimensional_date_flows_count,omitempty" validate:"omitempty,min=0"`
	DimensionalDescriptionFlowsCount *int `json:"dimensional_description_flows_count,omitempty" validate:"omitempty,min=0"`
	DimensionalIDFlowsCount          *int `json:"dimensional_id_flows_count,omitempty" validate:"omitempty,min=0"`

	SystemDimensionalID *int  `json:"system_dimensional_id,omitempty" validate:"omitempty,min=1"`
	IsNeedPermission    *bool `json:"is_need_permission,omitempty"`
	IsConstant          *bool `json:"is_constant,omitempty"`
	IsActive            *bool `json:"is_active,omitempty"`

	Level                    *int `json:"level,omitempty" validate:"omitempty,min=0"`
	DimensionalGroupFatherID *int `json:"dimensional_group_father_id,omitempty" validate:"omitempty,min=1"`
	DimensionalGroupSort     *int `json:"dimensional_group_sort,omitempty" validate:"omitempty,min=0"`
}

func (r *CreateDimensionalGroupRequest) Normalize() {
	if r.DimensionalGroupName != nil {
		v := strings.TrimSpace(*r.DimensionalGroupName)
		r.DimensionalGroupName = &v
	}
	if r.DimensionalGroupDescription != nil {
		v := strings.TrimSpace(*r.DimensionalGroupDescription)
		r.DimensionalGroupDescription = &v
	}
}

type UpdateDimensionalGroupRequest struct {
	CodeDefinitionID            *int    `json:"code_definition_id,omitempty" validate:"omitempty,min=1"`
	DimensionalGroupName        *string `json:"dimensional_group_name,omitempty" validate:"omitempty,max=100"`
	DimensionalGroupDescription *string `json:"dimensional_group_description,omitempty"`

	BooleanFlowsCount *int `json:"boolean_flows_count,omitempty" validate:"omitempty,min=0"`
	TextFlowsCount    *int `json:"text_flows_count,omitempty" validate:"omitempty,min=0"`
	NumberFlowsCount  *int `json:"number_flows_count,omitempty" validate:"omitempty,min=0"`
	DateFlowsCount    *int `json:"date_flows_count,omitempty" validate:"omitempty,min=0"`
	IDFlowsCount      *int `json:"id_flows_count,omitempty" validate:"omitempty,min=0"`

	DimensionalBooleanFlowsCount     *int `json:"dimensional_boolean_flows_count,omitempty" validate:"omitempty,min=0"`
	DimensionalTextFlowsCount        *int `json:"dimensional_text_flows_count,omitempty" validate:"omitempty,min=0"`
	DimensionalNumberFlowsCount      *int `json:"dimensional_number_flows_count,omitempty" validate:"omitempty,min=0"`
	DimensionalDateFlowsCount        *int `json:"dimensional_date_flows_count,omitempty" validate:"omitempty,min=0"`
	DimensionalDescriptionFlowsCount *int `json:"dimensional_description_flows_count,omitempty" validate:"omitempty,min=0"`
	DimensionalIDFlowsCount          *int `json:"dimensional_id_flows_count,omitempty" validate:"omitempty,min=0"`

	SystemDimensionalID *int  `json:"system_dimensional_id,omitempty" validate:"omitempty,min=1"`
	IsNeedPermission    *bool `json:"is_need_permission,omitempty"`
	IsConstant          *bool `json:"is_constant,omitempty"`
	IsActive            *bool `json:"is_active,omitempty"`

	Level                    *int `json:"level,omitempty" validate:"omitempty,min=0"`
	DimensionalGroupFatherID *int `json:"dimensional_group_father_id,omitempty" validate:"omitempty,min=1"`
	DimensionalGroupSort     *int `json:"dimensional_group_sort,omitempty" validate:"omitempty,min=0"`
}

func (r *UpdateDimensionalGroupRequest) ToUpdates() map[string]interface{} {
	up := make(map[string]interface{})

	setInt := func(col string, v *int) {
		if v != nil {
			up[col] = *v
		}
	}
	setBool := func(col string, v *bool) {
		if v != nil {
			up[col] = *v
		}
	}

	setInt("code_definition_id", r.CodeDefinitionID)
	if r.DimensionalGroupName != nil {
		up["dimensional_group_name"] = strings.TrimSpace(*r.DimensionalGroupName)
	}
	if r.DimensionalGroupDescription != nil {
		up["dimensional_group_description"] = strings.TrimSpace(*r.DimensionalGroupDescription)
	}

	setInt("boolean_flows_count", r.BooleanFlowsCount)
	setInt("text_flows_count", r.TextFlowsCount)
	setInt("number_flows_count", r.NumberFlowsCount)
	setInt("date_flows_count", r.DateFlowsCount)
	setInt("id_flows_count", r.IDFlowsCount)

	setInt("dimensional_boolean_flows_count", r.DimensionalBooleanFlowsCount)
	setInt("dimensional_text_flows_count", r.DimensionalTextFlowsCount)
	setInt("dimensional_number_flows_count", r.DimensionalNumberFlowsCount)
	setInt("dimensional_date_flows_count", r.DimensionalDateFlowsCount)
	setInt("dimensional_description_flows_count", r.DimensionalDescriptionFlowsCount)
	setInt("dimensional_id_flows_count", r.DimensionalIDFlowsCount)

	setInt("system_dimensional_id", r.SystemDimensionalID)
	setBool("is_need_permission", r.IsNeedPermission)
	setBool("is_constant", r.IsConstant)
	setBool("is_active", r.IsActive)

	setInt("level", r.Level)
	setInt("dimensional_group_father_id", r.DimensionalGroupFatherID)
	setInt("dimensional_group_sort", r.DimensionalGroupSort)

	return up
}

/* =======================================================
   QUERY FILTER DTOs
   ======================================================= */

type ListDimensionalGroupsQuery struct {
	CodeDefinitionID *int  `query:"code_definition_id"`
	IsActive         *bool `query:"is_active"`
}

type CanAddFieldQuery struct {
	Type           string `query:"type" validate:"required"`
	ForDimensional bool   `query:"for_dimensional"`
}

func (q *CanAddFieldQuery) Normalize() {
	q.Type = strings.ToLower(strings.TrimSpace(q.Type))
}
