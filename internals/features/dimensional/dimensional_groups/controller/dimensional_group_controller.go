// file: internals/features/dimensional/dimensional_groups/controller/dimensional_group_controller.go
package controller

import (
	groupDTO "dimensiku_backend/internals/features/dimensional/dimensional_groups/dto"
	groupModel "dimensiku_backend/internals/features/dimensional/dimensional_groups/model"
	groupService "dimensiku_backend/internals/features/dimensional/dimensional_groups/service"
	followModel "dimensiku_backend/internals/features/dimensional/follows/model"
	helper "dimensiku_backend/internals/helpers"
	"dimensiku_backend/internals/repository"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// kolom yang boleh dipakai sort_by di list
var dimensionalGroupSortColumns = map[string]string{
	"level":                  "level",
	"dimensional_group_sort": "dimensional_group_sort",
	"dimensional_group_name": "dimensional_group_name",
	"dimensional_group_id":   "dimensional_group_id",
}

type DimensionalGroupController struct {
	DB       *gorm.DB
	validate *validator.Validate

	client  *repository.TableClient[groupModel.DimensionalGroupModel]
	service *groupService.DimensionalGroupService
}

func NewDimensionalGroupController(db *gorm.DB) *DimensionalGroupController {
	return &DimensionalGroupController{
		DB:       db,
		validate: validator.New(),
		client:   repository.NewTableClient[groupModel.DimensionalGroupModel](db),
		service:  groupService.NewDimensionalGroupService(db),
	}
}

func (h *DimensionalGroupController) listFilters(c *fiber.Ctx) (map[string]any, error) {
	var q groupDTO.ListDimensionalGroupsQuery
	if err := c.QueryParser(&q); err != nil {
		return nil, err
	}
	filters := map[string]any{}
	if q.CodeDefinitionID != nil {
		filters["code_definition_id"] = *q.CodeDefinitionID
	}
	if q.IsActive != nil {
		filters["is_active"] = *q.IsActive
	}
	return filters, nil
}

// GET /dimensional-groups
func (h *DimensionalGroupController) List(c *fiber.Ctx) error {
	filters, err := h.listFilters(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Query tidak valid")
	}

	p := helper.ParseFiber(c, "level", "asc", helper.AdminOpts)
	result := repository.Paginate(c.Context(), h.client, p.Page, p.PerPage, &repository.ListOptions{
		OrderBy:   p.SortColumn(dimensionalGroupSortColumns, "level"),
		Ascending: p.Ascending(),
		Filters:   filters,
	})
	return helper.JsonList(c, "Daftar dimensional group", result.Data, helper.BuildMeta(result.Total, p))
}

// GET /dimensional-groups/with-details
func (h *DimensionalGroupController) ListWithDetails(c *fiber.Ctx) error {
	var q groupDTO.ListDimensionalGroupsQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Query tidak valid")
	}

	data := h.service.GetDimensionalGroupsWithDetails(c.Context(), groupService.GroupFilters{
		CodeDefinitionID: q.CodeDefinitionID,
		IsActive:         q.IsActive,
	})
	return helper.JsonOK(c, "Daftar dimensional group beserta detail", data)
}

// GET /dimensional-groups/level/:level
func (h *DimensionalGroupController) GetByLevel(c *fiber.Ctx) error {
	level, err := c.ParamsInt("level")
	if err != nil || level < 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Level tidak valid")
	}
	data := h.service.GetByLevel(c.Context(), level)
	return helper.JsonOK(c, "Daftar group per level", data)
}

// GET /dimensional-groups/:id
func (h *DimensionalGroupController) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	row, err := h.client.GetByID(c.Context(), id)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if row == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Dimensional group tidak ditemukan")
	}
	return helper.JsonOK(c, "Detail dimensional group", row)
}

// GET /dimensional-groups/:id/details
func (h *DimensionalGroupController) GetDetails(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	detail, err := h.service.GetDimensionalGroupByID(c.Context(), id)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if detail == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Dimensional group tidak ditemukan")
	}
	return helper.JsonOK(c, "Detail dimensional group", detail)
}

// GET /dimensional-groups/:id/children
func (h *DimensionalGroupController) GetChildren(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	data := h.service.GetChildren(c.Context(), id)
	return helper.JsonOK(c, "Daftar child group", data)
}

// GET /dimensional-groups/:id/follows
func (h *DimensionalGroupController) GetFollows(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	data := h.service.GetDimensionalGroupFollowData(c.Context(), id)
	return helper.JsonOK(c, "Nilai field level group", data)
}

// GET /dimensional-groups/:id/usage
func (h *DimensionalGroupController) GetUsage(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	usage := h.service.GetFieldsUsage(c.Context(), id)
	return helper.JsonOK(c, "Pemakaian field group", usage)
}

// GET /dimensional-groups/:id/can-add-field?type=text&for_dimensional=true
func (h *DimensionalGroupController) CanAddField(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var q groupDTO.CanAddFieldQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Query tidak valid")
	}
	q.Normalize()
	if err := h.validate.Struct(q); err != nil {
		return helper.ValidationError(c, err)
	}

	kind, ok := followModel.ParseFieldKind(q.Type)
	if !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "Jenis field tidak dikenal: "+q.Type)
	}

	allowed, err := h.service.CanAddField(c.Context(), id, kind, q.ForDimensional)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "Hasil cek kuota field", fiber.Map{
		"dimensional_group_id": id,
		"type":                 string(kind),
		"for_dimensional":      q.ForDimensional,
		"can_add":              allowed,
	})
}

// POST /dimensional-groups
func (h *DimensionalGroupController) Create(c *fiber.Ctx) error {
	var req groupDTO.CreateDimensionalGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := h.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	actorID := helper.ActorID(c)
	row := groupModel.DimensionalGroupModel{
		CodeDefinitionID:            req.CodeDefinitionID,
		DimensionalGroupName:        req.DimensionalGroupName,
		DimensionalGroupDescription: req.DimensionalGroupDescription,

		BooleanFlowsCount: req.BooleanFlowsCount,
		TextFlowsCount:    req.TextFlowsCount,
		NumberFlowsCount:  req.NumberFlowsCount,
		DateFlowsCount:    req.DateFlowsCount,
		IDFlowsCount:      req.IDFlowsCount,

		DimensionalBooleanFlowsCount:     req.DimensionalBooleanFlowsCount,
		DimensionalTextFlowsCount:        req.DimensionalTextFlowsCount,
		DimensionalNumberFlowsCount:      req.DimensionalNumberFlowsCount,
		DimensionalDateFlowsCount:        req.DimensionalDateFlowsCount,
		DimensionalDescriptionFlowsCount: req.DimensionalDescriptionFlowsCount,
		DimensionalIDFlowsCount:          req.DimensionalIDFlowsCount,

		SystemDimensionalID: req.SystemDimensionalID,
		IsNeedPermission:    req.IsNeedPermission,
		IsConstant:          req.IsConstant,
		IsActive:            req.IsActive,

		Level:                    req.Level,
		DimensionalGroupFatherID: req.DimensionalGroupFatherID,
		DimensionalGroupSort:     req.DimensionalGroupSort,
	}
	row.CreatedBy = &actorID

	created, err := h.client.Create(c.Context(), &row)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "Dimensional group berhasil dibuat", created)
}

// PUT /dimensional-groups/:id
func (h *DimensionalGroupController) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req groupDTO.UpdateDimensionalGroupRequest
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
		return helper.JsonError(c, fiber.StatusNotFound, "Dimensional group tidak ditemukan")
	}
	return helper.JsonUpdated(c, "Dimensional group berhasil diperbarui", updated)
}

// DELETE /dimensional-groups/:id
func (h *DimensionalGroupController) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	ok, err := h.client.Delete(c.Context(), id)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if !ok {
		return helper.JsonError(c, fiber.StatusNotFound, "Dimensional group tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Dimensional group berhasil dihapus", fiber.Map{"dimensional_group_id": id})
}
