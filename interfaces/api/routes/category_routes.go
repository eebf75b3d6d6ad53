package routes

import (
	"github.com/gofiber/fiber/v2"

	"ads-api/interfaces/api/handlers"
)

func SetupCategoryRoutes(api fiber.Router, h *handlers.Handlers) {
	categories := api.Group("/categories")

	// Public routes
	categories.Get("/", h.CategoryHandler.ListTree)            // categories ที่ active แบบ tree
	categories.Get("/slug/:slug", h.CategoryHandler.GetBySlug) // ดึงตาม slug
	categories.Get("/:id", h.CategoryHandler.GetByID)          // ดึงตาม ID
	categories.Get("/:id/fields", h.CategoryHandler.Fields)    // ฟอร์มลงประกาศของ category
}
