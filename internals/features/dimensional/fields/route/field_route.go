// file: internals/features/dimensional/fields/route/field_route.go
package route

import (
	fieldController "dimensiku_backend/internals/features/dimensional/fields/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func FieldAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := fieldController.NewFieldController(db)

	r := api.Group("/fields")
	r.Get("/with-details", ctrl.ListWithDetails)
	r.Get("/", ctrl.List)
	r.Get("/:id", ctrl.GetByID)
	r.Post("/", ctrl.Create)
	r.Put("/:id", ctrl.Update)
	r.Delete("/:id", ctrl.Delete)
}
