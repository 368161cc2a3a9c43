// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	routeDetails "dimensiku_backend/internals/route/details"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	// ===================== ADMIN =====================
	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/a")
	routeDetails.DimensionalAdminRoutes(admin, db)
}
