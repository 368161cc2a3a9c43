package model

import (
	"dimensiku_backend/internals/repository"
)

// DimensionalModel: elemen hierarkis di dalam satu group; unit yang
// jadi kunci entry data. Pohon parent/child lewat dimensional_father_id.
type DimensionalModel struct {
	DimensionalID       int     `json:"dimensional_id" gorm:"column:dimensional_id;primaryKey;autoIncrement"`
	DimensionalGroupID  *int    `json:"dimensional_group_id" gorm:"column:dimensional_group_id"`
	DimensionalName     *string `json:"dimensional_name" gorm:"column:dimensional_name"`
	IsActive            *bool   `json:"is_active" gorm:"column:is_active"`
	Level               *int    `json:"level" gorm:"column:level"`
	DimensionalFatherID *int    `json:"dimensional_father_id" gorm:"column:dimensional_father_id"`
	DimensionalSort     *int    `json:"dimensional_sort" gorm:"column:dimensional_sort"`

	repository.AuditFields
}

func (DimensionalModel) TableName() string {
	return "gc_dimensionals"
}

func (m DimensionalModel) PrimaryKey() int { return m.DimensionalID }
