package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"ads-api/pkg/utils"
)

// HealthChecker dependency ที่ /health ต้องเช็ค (db, redis, nats)
type HealthChecker struct {
	Name  string
	Check func(ctx context.Context) error
}

type HealthHandler struct {
	appName  string
	checkers []HealthChecker
}

func NewHealthHandler(appName string, checkers ...HealthChecker) *HealthHandler {
	return &HealthHandler{appName: appName, checkers: checkers}
}

type healthResponse struct {
	Status   string            `json:"status"`
	Service  string            `json:"service"`
	Checks   map[string]string `json:"checks"`
	Duration string            `json:"duration"`
}

func (h *HealthHandler) Health(c *fiber.Ctx) error {
	start := time.Now()
	ctx, cancel := context.WithTimeout(c.UserContext(), 3*time.Second)
	defer cancel()

	resp := healthResponse{Status: "ok", Service: h.appName, Checks: map[string]string{}}
	for _, chk := range h.checkers {
		if err := chk.Check(ctx); err != nil {
			resp.Checks[chk.Name] = "down: " + err.Error()
			resp.Status = "degraded"
			continue
		}
		resp.Checks[chk.Name] = "up"
	}
	resp.Duration = time.Since(start).String()

	if resp.Status != "ok" {
		return utils.ErrorResponse(c, fiber.StatusServiceUnavailable, utils.ErrCodeUnavailable, "Service degraded", resp)
	}
	return utils.SuccessResponse(c, resp)
}
