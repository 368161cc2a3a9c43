package model

import (
	"dimensiku_backend/internals/repository"
)

/* =========================================================
 * FOLLOW LEVEL GROUP (5 jenis nilai; description tidak ada
 * di level group)
 * ========================================================= */

type DimensionalGroupTextFollowModel struct {
	DimensionalGroupTextFollowID    int     `json:"dimensional_group_text_follow_id" gorm:"column:dimensional_group_text_follow_id;primaryKey;autoIncrement"`
	DimensionalGroupID              *int    `json:"dimensional_group_id" gorm:"column:dimensional_group_id"`
	FieldID                         *int    `json:"field_id" gorm:"column:field_id"`
	DimensionalGroupTextFollowValue *string `json:"dimensional_group_text_follow_value" gorm:"column:dimensional_group_text_follow_value"`

	repository.AuditFields
}

func (DimensionalGroupTextFollowModel) TableName() string {
	return "gc_dimensional_group_text_follows"
}

func (m DimensionalGroupTextFollowModel) PrimaryKey() int { return m.DimensionalGroupTextFollowID }

type DimensionalGroupNumberFollowModel struct {
	DimensionalGroupNumberFollowID    int      `json:"dimensional_group_number_follow_id" gorm:"column:dimensional_group_number_follow_id;primaryKey;autoIncrement"`
	DimensionalGroupID                *int     `json:"dimensional_group_id" gorm:"column:dimensional_group_id"`
	FieldID                           *int     `json:"field_id" gorm:"column:field_id"`
	DimensionalGroupNumberFollowValue *float64 `json:"dimensional_group_number_follow_value" gorm:"column:dimensional_group_number_follow_value"`

	repository.AuditFields
}

func (DimensionalGroupNumberFollowModel) TableName() string {
	return "gc_dimensional_group_number_follows"
}

func (m DimensionalGroupNumberFollowModel) PrimaryKey() int { return m.DimensionalGroupNumberFollowID }

type DimensionalGroupBooleanFollowModel struct {
	DimensionalGroupBooleanFollowID   int   `json:"dimensional_group_boolean_follow_id" gorm:"column:dimensional_group_boolean_follow_id;primaryKey;autoIncrement"`
	DimensionalGroupID                *int  `json:"dimensional_group_id" gorm:"column:dimensional_group_id"`
	FieldID                           *int  `json:"field_id" gorm:"column:field_id"`
	DimensionalGroupBooleanFollowStat *bool `json:"dimensional_group_boolean_follow_stat" gorm:"column:dimensional_group_boolean_follow_stat"`

	repository.AuditFields
}

func (DimensionalGroupBooleanFollowModel) TableName() string {
	return "gc_dimensional_group_boolean_follows"
}

func (m DimensionalGroupBooleanFollowModel) PrimaryKey() int { return m.DimensionalGroupBooleanFollowID }

type DimensionalGroupDateFollowModel struct {
	DimensionalGroupDateFollowID int     `json:"dimensional_group_date_follow_id" gorm:"column:dimensional_group_date_follow_id;primaryKey;autoIncrement"`
	DimensionalGroupID           *int    `json:"dimensional_group_id" gorm:"column:dimensional_group_id"`
	FieldID                      *int    `json:"field_id" gorm:"column:field_id"`
	DateValue                    *string `json:"date_value" gorm:"column:date_value"`

	repository.AuditFields
}

func (DimensionalGroupDateFollowModel) TableName() string {
	return "gc_dimensional_group_date_follows"
}

func (m DimensionalGroupDateFollowModel) PrimaryKey() int { return m.DimensionalGroupDateFollowID }

// Nilai reference level group menunjuk ke sebuah dimensional.
type DimensionalGroupIDFollowModel struct {
	DimensionalGroupIDFollowID int  `json:"dimensional_group_id_follow_id" gorm:"column:dimensional_group_id_follow_id;primaryKey;autoIncrement"`
	DimensionalGroupID         *int `json:"dimensional_group_id" gorm:"column:dimensional_group_id"`
	FieldID                    *int `json:"field_id" gorm:"column:field_id"`
	DimensionalID              *int `json:"dimensional_id" gorm:"column:dimensional_id"`

	repository.AuditFields
}

func (DimensionalGroupIDFollowModel) TableName() string {
	return "gc_dimensional_group_id_follows"
}

func (m DimensionalGroupIDFollowModel) PrimaryKey() int { return m.DimensionalGroupIDFollowID }
