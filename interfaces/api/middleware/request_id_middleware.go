package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"ads-api/pkg/logger"
)

const (
	RequestIDHeader    = "X-Request-ID"
	maxRequestIDLength = 64
)

// RequestIDMiddleware ใช้ id จาก client ถ้ามี (ยาวไม่เกิน 64) ไม่งั้นสร้างใหม่
func RequestIDMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := c.Get(RequestIDHeader)
		if requestID == "" || len(requestID) > maxRequestIDLength {
			requestID = uuid.New().String()
		}

		c.Set(RequestIDHeader, requestID)
		c.SetUserContext(logger.ContextWithRequestID(c.UserContext(), requestID))
		c.Locals("request_id", requestID)

		return c.Next()
	}
}
