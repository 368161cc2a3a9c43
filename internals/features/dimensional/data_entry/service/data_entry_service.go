// file: internals/features/dimensional/data_entry/service/data_entry_service.go
package service

import (
	"context"
	"fmt"
	"log"
	"strconv"

	followModel "dimensiku_backend/internals/features/dimensional/follows/model"
	gfModel "dimensiku_backend/internals/features/dimensional/group_fields/model"
	"dimensiku_backend/internals/repository"

	"gorm.io/gorm"
)

// DataEntryService menyebarkan satu payload form ke tabel follow yang
// tepat berdasarkan (jenis nilai, level attachment) tiap field.
type DataEntryService struct {
	DB *gorm.DB

	dimText    *repository.TableClient[followModel.DimensionalTextFollowModel]
	dimNumber  *repository.TableClient[followModel.DimensionalNumberFollowModel]
	dimBoolean *repository.TableClient[followModel.DimensionalBooleanFollowModel]
	dimDate    *repository.TableClient[followModel.DimensionalDateFollowModel]
	dimDesc    *repository.TableClient[followModel.DimensionalDescriptionFollowModel]
	dimID      *repository.TableClient[followModel.DimensionalIDFollowModel]

	grpText    *repository.TableClient[followModel.DimensionalGroupTextFollowModel]
	grpNumber  *repository.TableClient[followModel.DimensionalGroupNumberFollowModel]
	grpBoolean *repository.TableClient[followModel.DimensionalGroupBooleanFollowModel]
	grpDate    *repository.TableClient[followModel.DimensionalGroupDateFollowModel]
	grpID      *repository.TableClient[followModel.DimensionalGroupIDFollowModel]
}

func NewDataEntryService(db *gorm.DB) *DataEntryService {
	return &DataEntryService{
		DB:         db,
		dimText:    repository.NewTableClient[followModel.DimensionalTextFollowModel](db),
		dimNumber:  repository.NewTableClient[followModel.DimensionalNumberFollowModel](db),
		dimBoolean: repository.NewTableClient[followModel.DimensionalBooleanFollowModel](db),
		dimDate:    repository.NewTableClient[followModel.DimensionalDateFollowModel](db),
		dimDesc:    repository.NewTableClient[followModel.DimensionalDescriptionFollowModel](db),
		dimID:      repository.NewTableClient[followModel.DimensionalIDFollowModel](db),
		grpText:    repository.NewTableClient[followModel.DimensionalGroupTextFollowModel](db),
		grpNumber:  repository.NewTableClient[followModel.DimensionalGroupNumberFollowModel](db),
		grpBoolean: repository.NewTableClient[followModel.DimensionalGroupBooleanFollowModel](db),
		grpDate:    repository.NewTableClient[followModel.DimensionalGroupDateFollowModel](db),
		grpID:      repository.NewTableClient[followModel.DimensionalGroupIDFollowModel](db),
	}
}

/* =========================================================
 * SIMPAN PER NILAI
 * ========================================================= */

// SaveDimensionalFieldValue menyimpan satu nilai level dimensional ke
// tabel follow yang sesuai jenisnya.
func (s *DataEntryService) SaveDimensionalFieldValue(
	ctx context.Context,
	dimensionalID, fieldID int,
	value any,
	kind followModel.FieldKind,
	actorID int,
) (any, error) {
	switch kind {
	case followModel.KindText:
		v := coerceString(value)
		return s.dimText.Create(ctx, &followModel.DimensionalTextFollowModel{
			DimensionalID:              &dimensionalID,
			FieldID:                    &fieldID,
			DimensionalTextFollowValue: &v,
			AuditFields:                repository.AuditFields{CreatedBy: &actorID},
		})
	case followModel.KindNumber:
		v := coerceNumber(value)
		return s.dimNumber.Create(ctx, &followModel.DimensionalNumberFollowModel{
			DimensionalID:                &dimensionalID,
			FieldID:                      &fieldID,
			DimensionalNumberFollowValue: &v,
			AuditFields:                  repository.AuditFields{CreatedBy: &actorID},
		})
	case followModel.KindBoolean:
		v := coerceBool(value)
		return s.dimBoolean.Create(ctx, &followModel.DimensionalBooleanFollowModel{
			DimensionalID:                &dimensionalID,
			FieldID:                      &fieldID,
			DimensionalBooleanFollowStat: &v,
			AuditFields:                  repository.AuditFields{CreatedBy: &actorID},
		})
	case followModel.KindDate:
		// nilai date lolos apa adanya, tanpa validasi
		v := coerceString(value)
		return s.dimDate.Create(ctx, &followModel.DimensionalDateFollowModel{
			DimensionalID: &dimensionalID,
			FieldID:       &fieldID,
			DateValue:     &v,
			AuditFields:   repository.AuditFields{CreatedBy: &actorID},
		})
	case followModel.KindDescription:
		v := coerceString(value)
		return s.dimDesc.Create(ctx, &followModel.DimensionalDescriptionFollowModel{
			DimensionalID:    &dimensionalID,
			FieldID:          &fieldID,
			DescriptionValue: &v,
			AuditFields:      repository.AuditFields{CreatedBy: &actorID},
		})
	case followModel.KindID:
		return s.dimID.Create(ctx, &followModel.DimensionalIDFollowModel{
			DimensionalID:       &dimensionalID,
			FieldID:             &fieldID,
			FollowDimensionalID: coerceReference(value),
			AuditFields:         repository.AuditFields{CreatedBy: &actorID},
		})
	default:
		return nil, fmt.Errorf("jenis field tidak didukung: %s", kind)
	}
}

// SaveGroupFieldValue menyimpan satu nilai level group. Jenis
// description tidak punya tabel di level group dan ditolak.
func (s *DataEntryService) SaveGroupFieldValue(
	ctx context.Context,
	dimensionalGroupID, fieldID int,
	value any,
	kind followModel.FieldKind,
	actorID int,
) (any, error) {
	switch kind {
	case followModel.KindText:
		v := coerceString(value)
		return s.grpText.Create(ctx, &followModel.DimensionalGroupTextFollowModel{
			DimensionalGroupID:              &dimensionalGroupID,
			FieldID:                         &fieldID,
			DimensionalGroupTextFollowValue: &v,
			AuditFields:                     repository.AuditFields{CreatedBy: &actorID},
		})
	case followModel.KindNumber:
		v := coerceNumber(value)
		return s.grpNumber.Create(ctx, &followModel.DimensionalGroupNumberFollowModel{
			DimensionalGroupID:                &dimensionalGroupID,
			FieldID:                           &fieldID,
			DimensionalGroupNumberFollowValue: &v,
			AuditFields:                       repository.AuditFields{CreatedBy: &actorID},
		})
	case followModel.KindBoolean:
		v := coerceBool(value)
		return s.grpBoolean.Create(ctx, &followModel.DimensionalGroupBooleanFollowModel{
			DimensionalGroupID:                &dimensionalGroupID,
			FieldID:                           &fieldID,
			DimensionalGroupBooleanFollowStat: &v,
			AuditFields:                       repository.AuditFields{CreatedBy: &actorID},
		})
	case followModel.KindDate:
		v := coerceString(value)
		return s.grpDate.Create(ctx, &followModel.DimensionalGroupDateFollowModel{
			DimensionalGroupID: &dimensionalGroupID,
			FieldID:            &fieldID,
			DateValue:          &v,
			AuditFields:        repository.AuditFields{CreatedBy: &actorID},
		})
	case followModel.KindID:
		return s.grpID.Create(ctx, &followModel.DimensionalGroupIDFollowModel{
			DimensionalGroupID: &dimensionalGroupID,
			FieldID:            &fieldID,
			DimensionalID:      coerceReference(value),
			AuditFields:        repository.AuditFields{CreatedBy: &actorID},
		})
	default:
		return nil, fmt.Errorf("jenis field tidak didukung untuk group: %s", kind)
	}
}

/* =========================================================
 * SUBMIT FORM
 * ========================================================= */

type FieldSaveResult struct {
	FieldID   string `json:"fieldId"`
	FieldName string `json:"fieldName"`
	Type      string `json:"type,omitempty"` // "group" | "dimensional"
	Success   bool   `json:"success"`
	Data      any    `json:"data,omitempty"`
	Error     string `json:"error,omitempty"`
}

type SubmitResult struct {
	Success      bool              `json:"success"`
	TotalFields  int               `json:"totalFields"`
	SavedFields  int               `json:"savedFields"`
	FailedFields int               `json:"failedFields"`
	Results      []FieldSaveResult `json:"results"`
	Errors       []FieldSaveResult `json:"errors"`
}

// SubmitFormData menyebarkan satu form (fieldId → nilai mentah) ke
// tabel-tabel follow. Tiap field di-insert independen: gagalnya satu
// field tidak membatalkan field lain, dan tidak ada rollback untuk
// insert yang sudah sukses. totalFields menghitung semua key yang
// disubmit, termasuk yang dilewati karena kosong.
func (s *DataEntryService) SubmitFormData(
	ctx context.Context,
	formData map[string]any,
	fields []gfModel.DimensionalGroupFieldModel,
	selectedGroupID, selectedDimensionalID int,
	actorID int,
) SubmitResult {
	results := make([]FieldSaveResult, 0)
	errs := make([]FieldSaveResult, 0)

	for rawFieldID, value := range formData {
		if value == nil || value == "" {
			continue
		}

		attachment := findAttachment(fields, rawFieldID)
		if attachment == nil {
			log.Printf("[WARN] field id %s tidak ditemukan di group %d, dilewati", rawFieldID, selectedGroupID)
			continue
		}

		fieldID, _ := strconv.Atoi(rawFieldID)
		kind := followModel.ResolveFieldKind(typeTagOf(attachment))
		name := displayNameOf(attachment, rawFieldID)

		var (
			data  any
			err   error
			level string
		)
		if attachment.IsForGroup != nil && *attachment.IsForGroup {
			level = "group"
			data, err = s.SaveGroupFieldValue(ctx, selectedGroupID, fieldID, value, kind, actorID)
		} else {
			level = "dimensional"
			data, err = s.SaveDimensionalFieldValue(ctx, selectedDimensionalID, fieldID, value, kind, actorID)
		}

		if err != nil {
			log.Printf("[ERROR] simpan field %s gagal: %v", rawFieldID, err)
			errs = append(errs, FieldSaveResult{
				FieldID:   rawFieldID,
				FieldName: name,
				Success:   false,
				Error:     err.Error(),
			})
			continue
		}
		results = append(results, FieldSaveResult{
			FieldID:   rawFieldID,
			FieldName: name,
			Type:      level,
			Success:   true,
			Data:      data,
		})
	}

	return SubmitResult{
		Success:      len(errs) == 0,
		TotalFields:  len(formData),
		SavedFields:  len(results),
		FailedFields: len(errs),
		Results:      results,
		Errors:       errs,
	}
}

func findAttachment(fields []gfModel.DimensionalGroupFieldModel, rawFieldID string) *gfModel.DimensionalGroupFieldModel {
	id, err := strconv.Atoi(rawFieldID)
	if err != nil {
		return nil
	}
	for i := range fields {
		if fields[i].FieldID != nil && *fields[i].FieldID == id {
			return &fields[i]
		}
	}
	return nil
}

func typeTagOf(attachment *gfModel.DimensionalGroupFieldModel) int {
	if attachment.Field != nil && attachment.Field.FieldTypeDimensionalID != nil {
		return *attachment.Field.FieldTypeDimensionalID
	}
	return 0
}

func displayNameOf(attachment *gfModel.DimensionalGroupFieldModel, rawFieldID string) string {
	if attachment.Field != nil && attachment.Field.FieldName != nil && *attachment.Field.FieldName != "" {
		return *attachment.Field.FieldName
	}
	return "Field " + rawFieldID
}
