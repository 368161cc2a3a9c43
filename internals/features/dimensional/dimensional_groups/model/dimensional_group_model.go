package model

import (
	"dimensiku_backend/internals/repository"
)

// DimensionalGroupModel: kumpulan dimensional ber-hierarki, scoped ke
// satu code definition. Kolom *_flows_count adalah kuota jumlah field
// per jenis nilai: 5 di level group (tanpa description) dan 6 di level
// dimensional.
type DimensionalGroupModel struct {
	DimensionalGroupID          int     `json:"dimensional_group_id" gorm:"column:dimensional_group_id;primaryKey;autoIncrement"`
	CodeDefinitionID            *int    `json:"code_definition_id" gorm:"column:code_definition_id"`
	DimensionalGroupName        *string `json:"dimensional_group_name" gorm:"column:dimensional_group_name"`
	DimensionalGroupDescription *string `json:"dimensional_group_description" gorm:"column:dimensional_group_description"`

	// Kuota field level group
	BooleanFlowsCount *int `json:"boolean_flows_count" gorm:"column:boolean_flows_count"`
	TextFlowsCount    *int `json:"text_flows_count" gorm:"column:text_flows_count"`
	NumberFlowsCount  *int `json:"number_flows_count" gorm:"column:number_flows_count"`
	DateFlowsCount    *int `json:"date_flows_count" gorm:"column:date_flows_count"`
	IDFlowsCount      *int `json:"id_flows_count" gorm:"column:id_flows_count"`

	// Kuota field level dimensional
	DimensionalBooleanFlowsCount     *int `json:"dimensional_boolean_flows_count" gorm:"column:dimensional_boolean_flows_count"`
	DimensionalTextFlowsCount        *int `json:"dimensional_text_flows_count" gorm:"column:dimensional_text_flows_count"`
	DimensionalNumberFlowsCount      *int `json:"dimensional_number_flows_count" gorm:"column:dimensional_number_flows_count"`
	DimensionalDateFlowsCount        *int `json:"dimensional_date_flows_count" gorm:"column:dimensional_date_flows_count"`
	DimensionalDescriptionFlowsCount *int `json:"dimensional_description_flows_count" gorm:"column:dimensional_description_flows_count"`
	DimensionalIDFlowsCount          *int `json:"dimensional_id_flows_count" gorm:"column:dimensional_id_flows_count"`

	SystemDimensionalID *int  `json:"system_dimensional_id" gorm:"column:system_dimensional_id"`
	IsNeedPermission    *bool `json:"is_need_permission" gorm:"column:is_need_permission"`
	IsConstant          *bool `json:"is_constant" gorm:"column:is_constant"`
	IsActive            *bool `json:"is_active" gorm:"column:is_active"`

	Level                    *int `json:"level" gorm:"column:level"`
	DimensionalGroupFatherID *int `json:"dimensional_group_father_id" gorm:"column:dimensional_group_father_id"`
	DimensionalGroupSort     *int `json:"dimensional_group_sort" gorm:"column:dimensional_group_sort"`

	repository.AuditFields
}

func (DimensionalGroupModel) TableName() string {
	return "gc_dimensional_groups"
}

func (m DimensionalGroupModel) PrimaryKey() int { return m.DimensionalGroupID }
