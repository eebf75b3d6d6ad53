package routes

import (
	"github.com/gofiber/fiber/v2"

	"ads-api/interfaces/api/handlers"
)

func SetupRoutes(app *fiber.App, h *handlers.Handlers, jwtSecret string) {
	SetupHealthRoutes(app, h)

	api := app.Group("/api/v1")

	SetupCategoryRoutes(api, h)
	SetupAdRoutes(api, h, jwtSecret)
	SetupAdminRoutes(api, h, jwtSecret)
}
