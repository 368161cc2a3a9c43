// file: internals/features/dimensional/data_entry/route/data_entry_route.go
package route

import (
	dataEntryController "dimensiku_backend/internals/features/dimensional/data_entry/controller"
	"dimensiku_backend/internals/middlewares"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func DataEntryAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := dataEntryController.NewDataEntryController(db)

	r := api.Group("/data-entry")
	r.Post("/submit", middlewares.DataEntryRateLimiter(), ctrl.Submit)
}
