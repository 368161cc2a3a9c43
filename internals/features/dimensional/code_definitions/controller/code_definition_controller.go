// file: internals/features/dimensional/code_definitions/controller/code_definition_controller.go
package controller

import (
	cdDTO "dimensiku_backend/internals/features/dimensional/code_definitions/dto"
	cdModel "dimensiku_backend/internals/features/dimensional/code_definitions/model"
	cdService "dimensiku_backend/internals/features/dimensional/code_definitions/service"
	helper "dimensiku_backend/internals/helpers"
	"dimensiku_backend/internals/repository"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// kolom yang boleh dipakai sort_by di list
var codeDefinitionSortColumns = map[string]string{
	"code_definition_id":   "code_definition_id",
	"code_definition_code": "code_definition_code",
	"system_config_level":  "system_config_level",
}

type CodeDefinitionController struct {
	DB       *gorm.DB
	validate *validator.Validate

	client  *repository.TableClient[cdModel.CodeDefinitionModel]
	service *cdService.CodeDefinitionService
}

func NewCodeDefinitionController(db *gorm.DB) *CodeDefinitionController {
	return &CodeDefinitionController{
		DB:       db,
		validate: validator.New(),
		client:   repository.NewTableClient[cdModel.CodeDefinitionModel](db),
		service:  cdService.NewCodeDefinitionService(db),
	}
}

// GET /code-definitions
func (h *CodeDefinitionController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "code_definition_id", "asc", helper.AdminOpts)

	result := repository.Paginate(c.Context(), h.client, p.Page, p.PerPage, &repository.ListOptions{
		OrderBy:   p.SortColumn(codeDefinitionSortColumns, "code_definition_id"),
		Ascending: p.Ascending(),
	})
	return helper.JsonList(c, "Daftar code definition", result.Data, helper.BuildMeta(result.Total, p))
}

// GET /code-definitions/with-groups
func (h *CodeDefinitionController) ListWithGroups(c *fiber.Ctx) error {
	data := h.service.GetCodeDefinitionsWithGroups(c.Context())
	return helper.JsonOK(c, "Daftar code definition beserta groups", data)
}

// GET /code-definitions/:id
func (h *CodeDefinitionController) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	row, err := h.client.GetByID(c.Context(), id)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if row == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Code definition tidak ditemukan")
	}
	return helper.JsonOK(c, "Detail code definition", row)
}

// POST /code-definitions
func (h *CodeDefinitionController) Create(c *fiber.Ctx) error {
	var req cdDTO.CreateCodeDefinitionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := h.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	actorID := helper.ActorID(c)
	row := cdModel.CodeDefinitionModel{
		CodeDefinitionCode: req.CodeDefinitionCode,
		SystemConfigLevel:  req.SystemConfigLevel,
		IsAvailable:        req.IsAvailable,
	}
	row.CreatedBy = &actorID

	created, err := h.client.Create(c.Context(), &row)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "Code definition berhasil dibuat", created)
}

// PUT /code-definitions/:id
func (h *CodeDefinitionController) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req cdDTO.UpdateCodeDefinitionRequest
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
		return helper.JsonError(c, fiber.StatusNotFound, "Code definition tidak ditemukan")
	}
	return helper.JsonUpdated(c, "Code definition berhasil diperbarui", updated)
}

// DELETE /code-definitions/:id
func (h *CodeDefinitionController) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	ok, err := h.client.Delete(c.Context(), id)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if !ok {
		return helper.JsonError(c, fiber.StatusNotFound, "Code definition tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Code definition berhasil dihapus", fiber.Map{"code_definition_id": id})
}
