// file: internals/features/dimensional/fields/service/field_service.go
package service

import (
	"context"
	"log"

	dimModel "dimensiku_backend/internals/features/dimensional/dimensionals/model"
	fieldModel "dimensiku_backend/internals/features/dimensional/fields/model"
	gfModel "dimensiku_backend/internals/features/dimensional/group_fields/model"
	"dimensiku_backend/internals/repository"

	"gorm.io/gorm"
)

type FieldService struct {
	DB *gorm.DB

	fields       *repository.TableClient[fieldModel.FieldModel]
	dimensionals *repository.TableClient[dimModel.DimensionalModel]
}

func NewFieldService(db *gorm.DB) *FieldService {
	return &FieldService{
		DB:           db,
		fields:       repository.NewTableClient[fieldModel.FieldModel](db),
		dimensionals: repository.NewTableClient[dimModel.DimensionalModel](db),
	}
}

/* =========================================================
 * AGGREGATE: field + type tag + attachment group-nya
 * ========================================================= */

type FieldWithDetails struct {
	fieldModel.FieldModel
	FieldType              *dimModel.DimensionalModel           `json:"field_type"`
	DimensionalGroupFields []gfModel.DimensionalGroupFieldModel `json:"dimensional_group_fields"`
}

// GetFieldsWithDetails: semua field beserta dimensional type tag-nya dan
// daftar attachment ke group (dengan group-nya ikut dimuat). Relasi yang
// gagal dimuat didegradasi ke nil/kosong, field-nya tetap dikembalikan.
func (s *FieldService) GetFieldsWithDetails(ctx context.Context) []FieldWithDetails {
	fields := s.fields.List(ctx, &repository.ListOptions{
		OrderBy:   "field_id",
		Ascending: true,
	})

	out := make([]FieldWithDetails, 0, len(fields))
	for _, f := range fields {
		detail := FieldWithDetails{
			FieldModel:             f,
			DimensionalGroupFields: make([]gfModel.DimensionalGroupFieldModel, 0),
		}

		if f.FieldTypeDimensionalID != nil {
			fieldType, err := s.dimensionals.GetByID(ctx, *f.FieldTypeDimensionalID)
			if err != nil {
				log.Printf("[WARN] muat type tag field %d gagal: %v", f.FieldID, err)
			} else {
				detail.FieldType = fieldType
			}
		}

		attachments := make([]gfModel.DimensionalGroupFieldModel, 0)
		err := s.DB.WithContext(ctx).
			Preload("DimensionalGroup").
			Where("field_id = ?", f.FieldID).
			Order("field_sort asc").
			Find(&attachments).Error
		if err != nil {
			log.Printf("[WARN] muat attachment field %d gagal: %v", f.FieldID, err)
		} else {
			detail.DimensionalGroupFields = attachments
		}

		out = append(out, detail)
	}
	return out
}
