// file: internals/features/dimensional/dimensionals/route/dimensional_route.go
package route

import (
	dimController "dimensiku_backend/internals/features/dimensional/dimensionals/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func DimensionalAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := dimController.NewDimensionalController(db)

	r := api.Group("/dimensionals")
	r.Get("/with-details", ctrl.ListWithDetails)
	r.Get("/", ctrl.List)
	r.Get("/:id/follows", ctrl.GetFollows)
	r.Get("/:id", ctrl.GetByID)
	r.Post("/", ctrl.Create)
	r.Put("/:id", ctrl.Update)
	r.Delete("/:id", ctrl.Delete)
}
