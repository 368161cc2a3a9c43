package model

import (
	groupModel "dimensiku_backend/internals/features/dimensional/dimensional_groups/model"
	fieldModel "dimensiku_backend/internals/features/dimensional/fields/model"
	"dimensiku_backend/internals/repository"
)

// DimensionalGroupFieldModel: join many-to-many Field ↔ DimensionalGroup.
// is_for_group=true berarti nilai diisi sekali per group; false berarti
// sekali per dimensional di dalam group. list_dimensional_group_id jadi
// sumber pick-list saat jenis field-nya "id" (reference).
type DimensionalGroupFieldModel struct {
	DimensionalGroupFieldID int   `json:"dimensional_group_field_id" gorm:"column:dimensional_group_field_id;primaryKey;autoIncrement"`
	DimensionalGroupID      *int  `json:"dimensional_group_id" gorm:"column:dimensional_group_id"`
	FieldID                 *int  `json:"field_id" gorm:"column:field_id"`
	ListDimensionalGroupID  *int  `json:"list_dimensional_group_id" gorm:"column:list_dimensional_group_id"`
	IsForGroup              *bool `json:"is_for_group" gorm:"column:is_for_group"`
	FieldSort               *int  `json:"field_sort" gorm:"column:field_sort"`

	repository.AuditFields

	Field            *fieldModel.FieldModel            `json:"field,omitempty" gorm:"foreignKey:FieldID;references:FieldID"`
	DimensionalGroup *groupModel.DimensionalGroupModel `json:"dimensional_group,omitempty" gorm:"foreignKey:DimensionalGroupID;references:DimensionalGroupID"`
}

func (DimensionalGroupFieldModel) TableName() string {
	return "gc_dimensional_group_field"
}

func (m DimensionalGroupFieldModel) PrimaryKey() int { return m.DimensionalGroupFieldID }
