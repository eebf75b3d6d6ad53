package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"ads-api/pkg/logger"
	"ads-api/pkg/utils"
)

// LoggerMiddleware log หนึ่งบรรทัดต่อ request หลังตอบเสร็จ
func LoggerMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		status := c.Response().StatusCode()
		args := []any{
			"method", c.Method(),
			"path", c.Path(),
			"status", status,
			"latency", time.Since(start).String(),
			"ip", c.IP(),
		}
		if user, uerr := utils.GetUserFromContext(c); uerr == nil {
			args = append(args, "user_id", user.ID.String())
		}

		logFunc := logger.InfoContext
		if status >= fiber.StatusInternalServerError {
			logFunc = logger.ErrorContext
		} else if status >= fiber.StatusBadRequest {
			logFunc = logger.WarnContext
		}
		logFunc(c.UserContext(), "Request completed", args...)

		return err
	}
}
