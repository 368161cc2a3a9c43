// file: internals/features/dimensional/data_entry/dto/data_entry_dto.go
package dto

// SubmitFormDataRequest: payload entry data dari console. Key form_data
// adalah field_id dalam bentuk string, value-nya nilai mentah apa adanya
// (koersi per jenis terjadi di service).
type SubmitFormDataRequest struct {
	DimensionalID      int                    `json:"dimensional_id" validate:"required,min=1"`
	DimensionalGroupID int                    `json:"dimensional_group_id" validate:"required,min=1"`
	FormData           map[string]interface{} `json:"form_data" validate:"required"`
}
