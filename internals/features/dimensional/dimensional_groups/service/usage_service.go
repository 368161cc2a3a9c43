// file: internals/features/dimensional/dimensional_groups/service/usage_service.go
package service

import (
	"context"
	"log"
	"sync"

	groupModel "dimensiku_backend/internals/features/dimensional/dimensional_groups/model"
	followModel "dimensiku_backend/internals/features/dimensional/follows/model"
)

/* =========================================================
 * USAGE / KUOTA FIELD
 * Hitungan di sini advisory: dicek sebelum insert, tidak
 * mereservasi kapasitas, jadi race dengan insert berikutnya
 * memang mungkin.
 * ========================================================= */

type GroupFieldsUsage struct {
	// level group
	Text    int64 `json:"text"`
	Number  int64 `json:"number"`
	Date    int64 `json:"date"`
	Boolean int64 `json:"boolean"`
	ID      int64 `json:"id"`

	// level dimensional
	DimensionalText        int64 `json:"dimensional_text"`
	DimensionalNumber      int64 `json:"dimensional_number"`
	DimensionalDate        int64 `json:"dimensional_date"`
	DimensionalBoolean     int64 `json:"dimensional_boolean"`
	DimensionalDescription int64 `json:"dimensional_description"`
	DimensionalID          int64 `json:"dimensional_id"`
}

var followTableByKind = map[followModel.FieldKind]string{
	followModel.KindText:        "gc_dimensional_text_follows",
	followModel.KindNumber:      "gc_dimensional_number_follows",
	followModel.KindDate:        "gc_dimensional_date_follows",
	followModel.KindBoolean:     "gc_dimensional_boolean_follows",
	followModel.KindDescription: "gc_dimensional_description_follows",
	followModel.KindID:          "gc_dimensional_id_follows",
}

// GetFieldsUsage menghitung pemakaian field per (jenis, level) untuk
// satu group. Hitungan level group didiskriminasi per jenis lewat type
// tag field-nya, dan hitungan level dimensional di-scope ke dimensional
// milik group yang diperiksa.
func (s *DimensionalGroupService) GetFieldsUsage(ctx context.Context, groupID int) GroupFieldsUsage {
	var u GroupFieldsUsage
	var wg sync.WaitGroup

	countInto := func(dst *int64, fn func() int64) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			*dst = fn()
		}()
	}

	// level group (5 jenis, description tidak ada di level ini)
	countInto(&u.Text, func() int64 { return s.groupFieldCount(ctx, groupID, followModel.KindText) })
	countInto(&u.Number, func() int64 { return s.groupFieldCount(ctx, groupID, followModel.KindNumber) })
	countInto(&u.Date, func() int64 { return s.groupFieldCount(ctx, groupID, followModel.KindDate) })
	countInto(&u.Boolean, func() int64 { return s.groupFieldCount(ctx, groupID, followModel.KindBoolean) })
	countInto(&u.ID, func() int64 { return s.groupFieldCount(ctx, groupID, followModel.KindID) })

	// level dimensional (6 jenis)
	countInto(&u.DimensionalText, func() int64 { return s.dimensionalFollowCount(ctx, groupID, followModel.KindText) })
	countInto(&u.DimensionalNumber, func() int64 { return s.dimensionalFollowCount(ctx, groupID, followModel.KindNumber) })
	countInto(&u.DimensionalDate, func() int64 { return s.dimensionalFollowCount(ctx, groupID, followModel.KindDate) })
	countInto(&u.DimensionalBoolean, func() int64 { return s.dimensionalFollowCount(ctx, groupID, followModel.KindBoolean) })
	countInto(&u.DimensionalDescription, func() int64 { return s.dimensionalFollowCount(ctx, groupID, followModel.KindDescription) })
	countInto(&u.DimensionalID, func() int64 { return s.dimensionalFollowCount(ctx, groupID, followModel.KindID) })

	wg.Wait()
	return u
}

// groupFieldCount: jumlah attachment level group di satu group yang
// field-nya ber-type tag sesuai jenis.
func (s *DimensionalGroupService) groupFieldCount(ctx context.Context, groupID int, kind followModel.FieldKind) int64 {
	var n int64
	err := s.DB.WithContext(ctx).
		Table("gc_dimensional_group_field").
		Joins("JOIN gc_field ON gc_field.field_id = gc_dimensional_group_field.field_id").
		Where("gc_dimensional_group_field.dimensional_group_id = ?", groupID).
		Where("gc_dimensional_group_field.is_for_group = ?", true).
		Where("gc_field.field_type_dimensional_id = ?", followModel.TypeTagFor(kind)).
		Count(&n).Error
	if err != nil {
		log.Printf("[WARN] hitung field group %d jenis %s gagal: %v", groupID, kind, err)
		return 0
	}
	return n
}

// dimensionalFollowCount: jumlah row follow jenis tertentu yang
// menempel pada dimensional milik group yang diperiksa.
func (s *DimensionalGroupService) dimensionalFollowCount(ctx context.Context, groupID int, kind followModel.FieldKind) int64 {
	table, ok := followTableByKind[kind]
	if !ok {
		return 0
	}

	sub := s.DB.Table("gc_dimensionals").
		Select("dimensional_id").
		Where("dimensional_group_id = ?", groupID)

	var n int64
	err := s.DB.WithContext(ctx).
		Table(table).
		Where("dimensional_id IN (?)", sub).
		Count(&n).Error
	if err != nil {
		log.Printf("[WARN] hitung follow %s group %d gagal: %v", table, groupID, err)
		return 0
	}
	return n
}

// CanAddField: advisory — membandingkan pemakaian sekarang dengan
// kuota group untuk (jenis, level). Tidak mereservasi kapasitas.
func (s *DimensionalGroupService) CanAddField(ctx context.Context, groupID int, kind followModel.FieldKind, forDimensional bool) (bool, error) {
	group, err := s.groups.GetByID(ctx, groupID)
	if err != nil {
		return false, err
	}
	if group == nil {
		return false, nil
	}

	usage := s.GetFieldsUsage(ctx, groupID)
	current := usageFor(usage, kind, forDimensional)
	limit := limitFor(group, kind, forDimensional)
	return current < int64(limit), nil
}

func usageFor(u GroupFieldsUsage, kind followModel.FieldKind, forDimensional bool) int64 {
	if forDimensional {
		switch kind {
		case followModel.KindText:
			return u.DimensionalText
		case followModel.KindNumber:
			return u.DimensionalNumber
		case followModel.KindDate:
			return u.DimensionalDate
		case followModel.KindBoolean:
			return u.DimensionalBoolean
		case followModel.KindDescription:
			return u.DimensionalDescription
		case followModel.KindID:
			return u.DimensionalID
		}
		return 0
	}
	switch kind {
	case followModel.KindText:
		return u.Text
	case followModel.KindNumber:
		return u.Number
	case followModel.KindDate:
		return u.Date
	case followModel.KindBoolean:
		return u.Boolean
	case followModel.KindID:
		return u.ID
	}
	return 0
}

// limitFor membaca kolom kuota yang sesuai; kuota nil dianggap 0
// (description level group tidak punya kolom kuota sama sekali → 0).
func limitFor(g *groupModel.DimensionalGroupModel, kind followModel.FieldKind, forDimensional bool) int {
	deref := func(p *int) int {
		if p == nil {
			return 0
		}
		return *p
	}
	if forDimensional {
		switch kind {
		case followModel.KindText:
			return deref(g.DimensionalTextFlowsCount)
		case followModel.KindNumber:
			return deref(g.DimensionalNumberFlowsCount)
		case followModel.KindDate:
			return deref(g.DimensionalDateFlowsCount)
		case followModel.KindBoolean:
			return deref(g.DimensionalBooleanFlowsCount)
		case followModel.KindDescription:
			return deref(g.DimensionalDescriptionFlowsCount)
		case followModel.KindID:
			return deref(g.DimensionalIDFlowsCount)
		}
		return 0
	}
	switch kind {
	case followModel.KindText:
		return deref(g.TextFlowsCount)
	case followModel.KindNumber:
		return deref(g.NumberFlowsCount)
	case followModel.KindDate:
		return deref(g.DateFlowsCount)
	case followModel.KindBoolean:
		return deref(g.BooleanFlowsCount)
	case followModel.KindID:
		return deref(g.IDFlowsCount)
	}
	return 0
}
