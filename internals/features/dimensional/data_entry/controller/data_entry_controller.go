// file: internals/features/dimensional/data_entry/controller/data_entry_controller.go
package controller

import (
	dataEntryDTO "dimensiku_backend/internals/features/dimensional/data_entry/dto"
	dataEntryService "dimensiku_backend/internals/features/dimensional/data_entry/service"
	groupService "dimensiku_backend/internals/features/dimensional/dimensional_groups/service"
	helper "dimensiku_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type DataEntryController struct {
	DB       *gorm.DB
	validate *validator.Validate

	entry  *dataEntryService.DataEntryService
	groups *groupService.DimensionalGroupService
}

func NewDataEntryController(db *gorm.DB) *DataEntryController {
	return &DataEntryController{
		DB:       db,
		validate: validator.New(),
		entry:    dataEntryService.NewDataEntryService(db),
		groups:   groupService.NewDimensionalGroupService(db),
	}
}

// POST /data-entry/submit
// Tiap field di-apply independen: response 200 walau sebagian gagal,
// detailnya ada di results/errors.
func (h *DataEntryController) Submit(c *fiber.Ctx) error {
	var req dataEntryDTO.SubmitFormDataRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := h.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	fields := h.groups.ListGroupFields(c.Context(), req.DimensionalGroupID)

	result := h.entry.SubmitFormData(
		c.Context(),
		req.FormData,
		fields,
		req.DimensionalGroupID,
		req.DimensionalID,
		helper.ActorID(c),
	)

	if result.Success {
		return helper.JsonOK(c, "Entry data tersimpan", result)
	}
	return helper.JsonOK(c, "Entry data selesai dengan sebagian gagal", result)
}
