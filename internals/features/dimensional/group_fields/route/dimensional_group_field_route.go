// file: internals/features/dimensional/group_fields/route/dimensional_group_field_route.go
package route

import (
	gfController "dimensiku_backend/internals/features/dimensional/group_fields/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func DimensionalGroupFieldAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := gfController.NewDimensionalGroupFieldController(db)

	r := api.Group("/dimensional-group-fields")
	r.Get("/", ctrl.List)
	r.Get("/:id", ctrl.GetByID)
	r.Post("/", ctrl.Create)
	r.Put("/:id", ctrl.Update)
	r.Delete("/:id", ctrl.Delete)
}
