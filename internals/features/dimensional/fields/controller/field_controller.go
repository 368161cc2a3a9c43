// file: internals/features/dimensional/fields/controller/field_controller.go
package controller

import (
	fieldDTO "dimensiku_backend/internals/features/dimensional/fields/dto"
	fieldModel "dimensiku_backend/internals/features/dimensional/fields/model"
	fieldService "dimensiku_backend/internals/features/dimensional/fields/service"
	helper "dimensiku_backend/internals/helpers"
	"dimensiku_backend/internals/repository"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// kolom yang boleh dipakai sort_by di list
var fieldSortColumns = map[string]string{
	"field_id":   "field_id",
	"field_code": "field_code",
	"field_name": "field_name",
}

type FieldController struct {
	DB       *gorm.DB
	validate *validator.Validate

	client  *repository.TableClient[fieldModel.FieldModel]
	service *fieldService.FieldService
}

func NewFieldController(db *gorm.DB) *FieldController {
	return &FieldController{
		DB:       db,
		validate: validator.New(),
		client:   repository.NewTableClient[fieldModel.FieldModel](db),
		service:  fieldService.NewFieldService(db),
	}
}

// GET /fields
func (h *FieldController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "field_id", "asc", helper.AdminOpts)
	result := repository.Paginate(c.Context(), h.client, p.Page, p.PerPage, &repository.ListOptions{
		OrderBy:   p.SortColumn(fieldSortColumns, "field_id"),
		Ascending: p.Ascending(),
	})
	return helper.JsonList(c, "Daftar field", result.Data, helper.BuildMeta(result.Total, p))
}

// GET /fields/with-details
func (h *FieldController) ListWithDetails(c *fiber.Ctx) error {
	data := h.service.GetFieldsWithDetails(c.Context())
	return helper.JsonOK(c, "Daftar field beserta detail", data)
}

// GET /fields/:id
func (h *FieldController) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	row, err := h.client.GetByID(c.Context(), id)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if row == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Field tidak ditemukan")
	}
	return helper.JsonOK(c, "Detail field", row)
}

// POST /fields
func (h *FieldController) Create(c *fiber.Ctx) error {
	var req fieldDTO.CreateFieldRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := h.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	actorID := helper.ActorID(c)
	row := fieldModel.FieldModel{
		FieldCode:              req.FieldCode,
		FieldName:              req.FieldName,
		FieldTypeDimensionalID: req.FieldTypeDimensionalID,
	}
	row.CreatedBy = &actorID

	created, err := h.client.Create(c.Context(), &row)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "Field berhasil dibuat", created)
}

// PUT /fields/:id
func (h *FieldController) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req fieldDTO.UpdateFieldRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := h.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	updated, err := h.client.Update(c.Context(), id, req.ToUpdates(), helper.ActorID(c))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if updated == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Field tidak ditemukan")
	}
	return helper.JsonUpdated(c, "Field berhasil diperbarui", updated)
}

// DELETE /fields/:id
func (h *FieldController) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	ok, err := h.client.Delete(c.Context(), id)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if !ok {
		return helper.JsonError(c, fiber.StatusNotFound, "Field tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Field berhasil dihapus", fiber.Map{"field_id": id})
}
