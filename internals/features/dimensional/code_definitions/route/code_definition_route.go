// file: internals/features/dimensional/code_definitions/route/code_definition_route.go
package route

import (
	cdController "dimensiku_backend/internals/features/dimensional/code_definitions/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func CodeDefinitionAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := cdController.NewCodeDefinitionController(db)

	r := api.Group("/code-definitions")
	r.Get("/with-groups", ctrl.ListWithGroups)
	r.Get("/", ctrl.List)
	r.Get("/:id", ctrl.GetByID)
	r.Post("/", ctrl.Create)
	r.Put("/:id", ctrl.Update)
	r.Delete("/:id", ctrl.Delete)
}
