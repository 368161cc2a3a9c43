// file: internals/features/dimensional/dimensionals/controller/dimensional_controller.go
package controller

import (
	dimDTO "dimensiku_backend/internals/features/dimensional/dimensionals/dto"
	dimModel "dimensiku_backend/internals/features/dimensional/dimensionals/model"
	dimService "dimensiku_backend/internals/features/dimensional/dimensionals/service"
	helper "dimensiku_backend/internals/helpers"
	"dimensiku_backend/internals/repository"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// kolom yang boleh dipakai sort_by di list
var dimensionalSortColumns = map[string]string{
	"dimensional_sort": "dimensional_sort",
	"level":            "level",
	"dimensional_name": "dimensional_name",
	"dimensional_id":   "dimensional_id",
}

type DimensionalController struct {
	DB       *gorm.DB
	validate *validator.Validate

	client  *repository.TableClient[dimModel.DimensionalModel]
	service *dimService.DimensionalService
}

func NewDimensionalController(db *gorm.DB) *DimensionalController {
	return &DimensionalController{
		DB:       db,
		validate: validator.New(),
		client:   repository.NewTableClient[dimModel.DimensionalModel](db),
		service:  dimService.NewDimensionalService(db),
	}
}

// GET /dimensionals
func (h *DimensionalController) List(c *fiber.Ctx) error {
	var q dimDTO.ListDimensionalsQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Query tidak valid")
	}

	filters := map[string]any{}
	if q.DimensionalGroupID != nil {
		filters["dimensional_group_id"] = *q.DimensionalGroupID
	}
	if q.Level != nil {
		filters["level"] = *q.Level
	}

	p := helper.ParseFiber(c, "dimensional_sort", "asc", helper.AdminOpts)
	result := repository.Paginate(c.Context(), h.client, p.Page, p.PerPage, &repository.ListOptions{
		OrderBy:   p.SortColumn(dimensionalSortColumns, "dimensional_sort"),
		Ascending: p.Ascending(),
		Filters:   filters,
	})
	return helper.JsonList(c, "Daftar dimensional", result.Data, helper.BuildMeta(result.Total, p))
}

// GET /dimensionals/with-details?dimensional_group_id=
func (h *DimensionalController) ListWithDetails(c *fiber.Ctx) error {
	var q dimDTO.ListDimensionalsQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Query tidak valid")
	}
	data := h.service.GetDimensionalsWithDetails(c.Context(), q.DimensionalGroupID)
	return helper.JsonOK(c, "Daftar dimensional beserta detail", data)
}

// GET /dimensionals/:id
func (h *DimensionalController) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	row, err := h.client.GetByID(c.Context(), id)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if row == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Dimensional tidak ditemukan")
	}
	return helper.JsonOK(c, "Detail dimensional", row)
}

// GET /dimensionals/:id/follows
func (h *DimensionalController) GetFollows(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	data := h.service.GetDimensionalFollowData(c.Context(), id)
	return helper.JsonOK(c, "Nilai field dimensional", data)
}

// POST /dimensionals
func (h *DimensionalController) Create(c *fiber.Ctx) error {
	var req dimDTO.CreateDimensionalRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := h.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	actorID := helper.ActorID(c)
	row := dimModel.DimensionalModel{
		DimensionalGroupID:  req.DimensionalGroupID,
		DimensionalName:     req.DimensionalName,
		IsActive:            req.IsActive,
		Level:               req.Level,
		DimensionalFatherID: req.DimensionalFatherID,
		DimensionalSort:     req.DimensionalSort,
	}
	row.CreatedBy = &actorID

	created, err := h.client.Create(c.Context(), &row)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "Dimensional berhasil dibuat", created)
}

// PUT /dimensionals/:id
func (h *DimensionalController) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dimDTO.UpdateDimensionalRequest
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
		return helper.JsonError(c, fiber.StatusNotFound, "Dimensional tidak ditemukan")
	}
	return helper.JsonUpdated(c, "Dimensional berhasil diperbarui", updated)
}

// DELETE /dimensionals/:id
func (h *DimensionalController) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	ok, err := h.client.Delete(c.Context(), id)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if !ok {
		return helper.JsonError(c, fiber.StatusNotFound, "Dimensional tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Dimensional berhasil dihapus", fiber.Map{"dimensional_id": id})
}
