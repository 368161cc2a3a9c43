// file: internals/features/dimensional/code_definitions/dto/code_definition_dto.go
package dto

import "strings"

/* =======================================================
   REQUEST DTOs (CREATE / UPDATE)
   ======================================================= */

type CreateCodeDefinitionRequest struct {
	CodeDefinitionCode *string `json:"code_definition_code,omitempty" validate:"omitempty,max=15"`
	SystemConfigLevel  *int    `json:"system_config_level,omitempty" validate:"omitempty,min=0"`
	IsAvailable        *bool   `json:"is_available,omitempty"`
}

func (r *CreateCodeDefinitionRequest) Normalize() {
	if r.CodeDefinitionCode != nil {
		v := strings.TrimSpace(*r.CodeDefinitionCode)
		r.CodeDefinitionCode = &v
	}
}

type UpdateCodeDefinitionRequest struct {
	CodeDefinitionCode *string `json:"code_definition_code,omitempty" validate:"omitempty,max=15"`
	SystemConfigLevel  *int    `json:"system_config_level,omitempty" validate:"omitempty,min=0"`
	IsAvailable        *bool   `json:"is_available,omitempty"`
}

func (r *UpdateCodeDefinitionRequest) ToUpdates() map[string]interface{} {
	up := make(map[string]interface{})
	if r.CodeDefinitionCode != nil {
		up["code_definition_code"] = strings.TrimSpace(*r.CodeDefinitionCode)
	}
	if r.SystemConfigLevel != nil {
		up["system_config_level"] = *r.SystemConfigLevel
	}
	if r.IsAvailable != nil {
		up["is_available"] = *r.IsAvailable
	}
	return up
}
