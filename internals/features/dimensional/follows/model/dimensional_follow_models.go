package model

import (
	"dimensiku_backend/internals/repository"
)

/* =========================================================
 * FOLLOW LEVEL DIMENSIONAL (6 jenis nilai)
 * Satu row = (dimensional_id, field_id, satu nilai bertipe, audit).
 * ========================================================= */

type DimensionalTextFollowModel struct {
	DimensionalTextFollowID    int     `json:"dimensional_text_follow_id" gorm:"column:dimensional_text_follow_id;primaryKey;autoIncrement"`
	DimensionalID              *int    `json:"dimensional_id" gorm:"column:dimensional_id"`
	FieldID                    *int    `json:"field_id" gorm:"column:field_id"`
	DimensionalTextFollowValue *string `json:"dimensional_text_follow_value" gorm:"column:dimensional_text_follow_value"`

	repository.AuditFields
}

func (DimensionalTextFollowModel) TableName() string {
	return "gc_dimensional_text_follows"
}

func (m DimensionalTextFollowModel) PrimaryKey() int { return m.DimensionalTextFollowID }

type DimensionalNumberFollowModel struct {
	DimensionalNumberFollowID    int      `json:"dimensional_number_follow_id" gorm:"column:dimensional_number_follow_id;primaryKey;autoIncrement"`
	DimensionalID                *int     `json:"dimensional_id" gorm:"column:dimensional_id"`
	FieldID                      *int     `json:"field_id" gorm:"column:field_id"`
	DimensionalNumberFollowValue *float64 `json:"dimensional_number_follow_value" gorm:"column:dimensional_number_follow_value"`

	repository.AuditFields
}

func (DimensionalNumberFollowModel) TableName() string {
	return "gc_dimensional_number_follows"
}

func (m DimensionalNumberFollowModel) PrimaryKey() int { return m.DimensionalNumberFollowID }

type DimensionalBooleanFollowModel struct {
	DimensionalBooleanFollowID   int   `json:"dimensional_boolean_follow_id" gorm:"column:dimensional_boolean_follow_id;primaryKey;autoIncrement"`
	DimensionalID                *int  `json:"dimensional_id" gorm:"column:dimensional_id"`
	FieldID                      *int  `json:"field_id" gorm:"column:field_id"`
	DimensionalBooleanFollowStat *bool `json:"dimensional_boolean_follow_stat" gorm:"column:dimensional_boolean_follow_stat"`

	repository.AuditFields
}

func (DimensionalBooleanFollowModel) TableName() string {
	return "gc_dimensional_boolean_follows"
}

func (m DimensionalBooleanFollowModel) PrimaryKey() int { return m.DimensionalBooleanFollowID }

// Nilai date sengaja string dan lolos apa adanya tanpa validasi;
// kolom DB bertipe date yang menolak format rusak.
type DimensionalDateFollowModel struct {
	DimensionalDateFollowID int     `json:"dimensional_date_follow_id" gorm:"column:dimensional_date_follow_id;primaryKey;autoIncrement"`
	DimensionalID           *int    `json:"dimensional_id" gorm:"column:dimensional_id"`
	FieldID                 *int    `json:"field_id" gorm:"column:field_id"`
	DateValue               *string `json:"date_value" gorm:"column:date_value"`

	repository.AuditFields
}

func (DimensionalDateFollowModel) TableName() string {
	return "gc_dimensional_date_follows"
}

func (m DimensionalDateFollowModel) PrimaryKey() int { return m.DimensionalDateFollowID }

type DimensionalDescriptionFollowModel struct {
	DimensionalDescriptionFollowID int     `json:"dimensional_description_follow_id" gorm:"column:dimensional_description_follow_id;primaryKey;autoIncrement"`
	DimensionalID                  *int    `json:"dimensional_id" gorm:"column:dimensional_id"`
	FieldID                        *int    `json:"field_id" gorm:"column:field_id"`
	DescriptionValue               *string `json:"description_value" gorm:"column:description_value"`

	repository.AuditFields
}

func (DimensionalDescriptionFollowModel) TableName() string {
	return "gc_dimensional_description_follows"
}

func (m DimensionalDescriptionFollowModel) PrimaryKey() int { return m.DimensionalDescriptionFollowID }

type DimensionalIDFollowModel struct {
	DimensionalIDFollowID int  `json:"dimensional_id_follow_id" gorm:"column:dimensional_id_follow_id;primaryKey;autoIncrement"`
	DimensionalID         *int `json:"dimensional_id" gorm:"column:dimensional_id"`
	FieldID               *int `json:"field_id" gorm:"column:field_id"`
	FollowDimensionalID   *int `json:"follow_dimensional_id" gorm:"column:follow_dimensional_id"`

	repository.AuditFields
}

func (DimensionalIDFollowModel) TableName() string {
	return "gc_dimensional_id_follows"
}

func (m DimensionalIDFollowModel) PrimaryKey() int { return m.DimensionalIDFollowID }
