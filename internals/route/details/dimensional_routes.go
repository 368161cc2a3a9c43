// file: internals/route/details/dimensional_routes.go
package details

import (
	CodeDefinitionRoutes "dimensiku_backend/internals/features/dimensional/code_definitions/route"
	DataEntryRoutes "dimensiku_backend/internals/features/dimensional/data_entry/route"
	DimensionalGroupRoutes "dimensiku_backend/internals/features/dimensional/dimensional_groups/route"
	DimensionalRoutes "dimensiku_backend/internals/features/dimensional/dimensionals/route"
	FieldRoutes "dimensiku_backend/internals/features/dimensional/fields/route"
	GroupFieldRoutes "dimensiku_backend/internals/features/dimensional/group_fields/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ✅ Semua route admin console dimensional.
// Contoh akses: /api/a/dimensional-groups
func DimensionalAdminRoutes(api fiber.Router, db *gorm.DB) {
	CodeDefinitionRoutes.CodeDefinitionAdminRoutes(api, db)
	DimensionalGroupRoutes.DimensionalGroupAdminRoutes(api, db)
	DimensionalRoutes.DimensionalAdminRoutes(api, db)
	FieldRoutes.FieldAdminRoutes(api, db)
	GroupFieldRoutes.DimensionalGroupFieldAdminRoutes(api, db)
	DataEntryRoutes.DataEntryAdminRoutes(api, db)
}
