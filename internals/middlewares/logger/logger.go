package logger

// file: internals/middlewares/logger/logger.go

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

// LoggerMiddleware mencatat access log per request, termasuk reqid
// yang dipasang RequestIDMiddleware.
func LoggerMiddleware() fiber.Handler {
	return logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Asia/Jakarta",
		Format:     "[${time}] reqid=${locals:reqid} ${ip} - ${method} ${path} - ${status} - ${latency}\n",
	})
}
