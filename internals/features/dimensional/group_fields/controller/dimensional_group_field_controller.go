// file: internals/features/dimensional/group_fields/controller/dimensional_group_field_controller.go
package controller

import (
	gfDTO "dimensiku_backend/internals/features/dimensional/group_fields/dto"
	gfModel "dimensiku_backend/internals/features/dimensional/group_fields/model"
	helper "dimensiku_backend/internals/helpers"
	"dimensiku_backend/internals/repository"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// kolom yang boleh dipakai sort_by di list
var groupFieldSortColumns = map[string]string{
	"field_sort":                 "field_sort",
	"dimensional_group_field_id": "dimensional_group_field_id",
}

type DimensionalGroupFieldController struct {
	DB       *gorm.DB
	validate *validator.Validate

	client *repository.TableClient[gfModel.DimensionalGroupFieldModel]
}

func NewDimensionalGroupFieldController(db *gorm.DB) *DimensionalGroupFieldController {
	return &DimensionalGroupFieldController{
		DB:       db,
		validate: validator.New(),
		client:   repository.NewTableClient[gfModel.DimensionalGroupFieldModel](db),
	}
}

// GET /dimensional-group-fields
func (h *DimensionalGroupFieldController) List(c *fiber.Ctx) error {
	var q gfDTO.ListDimensionalGroupFieldsQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Query tidak valid")
	}

	filters := map[string]any{}
	if q.DimensionalGroupID != nil {
		filters["dimensional_group_id"] = *q.DimensionalGroupID
	}
	if q.FieldID != nil {
		filters["field_id"] = *q.FieldID
	}
	if q.IsForGroup != nil {
		filters["is_for_group"] = *q.IsForGroup
	}

	p := helper.ParseFiber(c, "field_sort", "asc", helper.AdminOpts)
	result := repository.Paginate(c.Context(), h.client, p.Page, p.PerPage, &repository.ListOptions{
		OrderBy:   p.SortColumn(groupFieldSortColumns, "field_sort"),
		Ascending: p.Ascending(),
		Filters:   filters,
	})
	return helper.JsonList(c, "Daftar attachment field", result.Data, helper.BuildMeta(result.Total, p))
}

// GET /dimensional-group-fields/:id
func (h *DimensionalGroupFieldController) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	row, err := h.client.GetByID(c.Context(), id)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if row == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Attachment field tidak ditemukan")
	}
	return helper.JsonOK(c, "Detail attachment field", row)
}

// POST /dimensional-group-fields
func (h *DimensionalGroupFieldController) Create(c *fiber.Ctx) error {
	var req gfDTO.CreateDimensionalGroupFieldRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := h.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	actorID := helper.ActorID(c)
	row := gfModel.DimensionalGroupFieldModel{
		DimensionalGroupID:     req.DimensionalGroupID,
		FieldID:                req.FieldID,
		ListDimensionalGroupID: req.ListDimensionalGroupID,
		IsForGroup:             req.IsForGroup,
		FieldSort:              req.FieldSort,
	}
	row.CreatedBy = &actorID

	created, err := h.client.Create(c.Context(), &row)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "Attachment field berhasil dibuat", created)
}

// PUT /dimensional-group-fields/:id
func (h *DimensionalGroupFieldController) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req gfDTO.UpdateDimensionalGroupFieldRequest
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
		return helper.JsonError(c, fiber.StatusNotFound, "Attachment field tidak ditemukan")
	}
	return helper.JsonUpdated(c, "Attachment field berhasil diperbarui", updated)
}

// DELETE /dimensional-group-fields/:id
func (h *DimensionalGroupFieldController) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	ok, err := h.client.Delete(c.Context(), id)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if !ok {
		return helper.JsonError(c, fiber.StatusNotFound, "Attachment field tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Attachment field berhasil dihapus", fiber.Map{"dimensional_group_field_id": id})
}
