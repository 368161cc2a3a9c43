package model

import (
	"dimensiku_backend/internals/repository"
)

// CodeDefinitionModel: namespace konfigurasi paling atas yang menaungi
// dimensional groups. Semua atribut selain PK nullable (soft-typed).
type CodeDefinitionModel struct {
	CodeDefinitionID   int     `json:"code_definition_id" gorm:"column:code_definition_id;primaryKey;autoIncrement"`
	CodeDefinitionCode *string `json:"code_definition_code" gorm:"column:code_definition_code;size:15"`
	SystemConfigLevel  *int    `json:"system_config_level" gorm:"column:system_config_level"`
	IsAvailable        *bool   `json:"is_available" gorm:"column:is_available"`

	repository.AuditFields
}

func (CodeDefinitionModel) TableName() string {
	return "gc_code_definition"
}

func (m CodeDefinitionModel) PrimaryKey() int { return m.CodeDefinitionID }
