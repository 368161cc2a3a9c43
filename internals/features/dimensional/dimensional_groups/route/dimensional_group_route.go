// file: internals/features/dimensional/dimensional_groups/route/dimensional_group_route.go
package route

import (
	groupController "dimensiku_backend/internals/features/dimensional/dimensional_groups/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func DimensionalGroupAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := groupController.NewDimensionalGroupController(db)

	r := api.Group("/dimensional-groups")
	// route statis didaftarkan duluan supaya tidak tertelan /:id
	r.Get("/with-details", ctrl.ListWithDetails)
	r.Get("/level/:level", ctrl.GetByLevel)
	r.Get("/", ctrl.List)
	r.Get("/:id/details", ctrl.GetDetails)
	r.Get("/:id/children", ctrl.GetChildren)
	r.Get("/:id/follows", ctrl.GetFollows)
	r.Get("/:id/usage", ctrl.GetUsage)
	r.Get("/:id/can-add-field", ctrl.CanAddField)
	r.Get("/:id", ctrl.GetByID)
	r.Post("/", ctrl.Create)
	r.Put("/:id", ctrl.Update)
	r.Delete("/:id", ctrl.Delete)
}
