package routes

import (
	"github.com/gofiber/fiber/v2"

	"ads-api/interfaces/api/handlers"
	"ads-api/interfaces/api/middleware"
)

func SetupAdminRoutes(api fiber.Router, h *handlers.Handlers, jwtSecret string) {
	admin := api.Group("/admin", middleware.Protected(jwtSecret), middleware.AdminOnly())

	// เรียกหลัง import definitions ใหม่ ไม่งั้น cache อยู่ได้ถึง 12 ชม.
	admin.Post("/categories/:id/fields/invalidate", h.AdminHandler.InvalidateFields)
}
