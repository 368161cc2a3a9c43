package model

import (
	"dimensiku_backend/internals/repository"
)

// FieldModel: definisi field reusable. field_type_dimensional_id
// menunjuk DimensionalModel yang jadi type tag-nya; nama type tag itu
// yang menentukan jenis nilai (text/number/boolean/date/description/id)
// — konvensi penamaan, bukan enum tertutup di storage.
type FieldModel struct {
	FieldID                int     `json:"field_id" gorm:"column:field_id;primaryKey;autoIncrement"`
	FieldCode              *string `json:"field_code" gorm:"column:field_code"`
	FieldName              *string `json:"field_name" gorm:"column:field_name"`
	FieldTypeDimensionalID *int    `json:"field_type_dimensional_id" gorm:"column:field_type_dimensional_id"`

	repository.AuditFields
}

func (FieldModel) TableName() string {
	return "gc_field"
}

func (m FieldModel) PrimaryKey() int { return m.FieldID }
