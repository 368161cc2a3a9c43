// file: internals/features/dimensional/fields/dto/field_dto.go
package dto

import "strings"

/* =======================================================
   REQUEST DTOs (CREATE / UPDATE)
   ======================================================= */

type CreateFieldRequest struct {
	FieldCode              *string `json:"field_code,omitempty" validate:"omitempty,max=50"`
	FieldName              *string `json:"field_name,omitempty" validate:"omitempty,max=100"`
	FieldTypeDimensionalID *int    `json:"field_type_dimensional_id,omitempty" validate:"omitempty,min=1"`
}

func (r *CreateFieldRequest) Normalize() {
	if r.FieldCode != nil {
		v := strings.TrimSpace(*r.FieldCode)
		r.FieldCode = &v
	}
	if r.FieldName != nil {
		v := strings.TrimSpace(*r.FieldName)
		r.FieldName = &v
	}
}

type UpdateFieldRequest struct {
	FieldCode              *string `json:"field_code,omitempty" validate:"omitempty,max=50"`
	FieldName              *string `json:"field_name,omitempty" validate:"omitempty,max=100"`
	FieldTypeDimensionalID *int    `json:"field_type_dimensional_id,omitempty" validate:"omitempty,min=1"`
}

func (r *UpdateFieldRequest) ToUpdates() map[string]interface{} {
	up := make(map[string]interface{})
	if r.FieldCode != nil {
		up["field_code"] = strings.TrimSpace(*r.FieldCode)
	}
	if r.FieldName != nil {
		up["field_name"] = strings.TrimSpace(*r.FieldName)
	}
	if r.FieldTypeDimensionalID != nil {
		up["field_type_dimensional_id"] = *r.FieldTypeDimensionalID
	}
	return up
}
