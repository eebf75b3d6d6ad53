package routes

import (
	"github.com/gofiber/fiber/v2"

	"ads-api/interfaces/api/handlers"
	"ads-api/interfaces/api/middleware"
)

func SetupAdRoutes(api fiber.Router, h *handlers.Handlers, jwtSecret string) {
	ads := api.Group("/ads")
	auth := middleware.Protected(jwtSecret)

	// auth ใส่ราย route: Group("", mw) จะครอบ /:id ที่เป็น public ไปด้วย
	ads.Post("/", auth, h.AdHandler.Create)      // ลงประกาศ
	ads.Get("/mine", auth, h.AdHandler.ListMine) // ประกาศของฉัน (ต้องมาก่อน /:id)

	ads.Get("/:id", h.AdHandler.GetByID)
}
