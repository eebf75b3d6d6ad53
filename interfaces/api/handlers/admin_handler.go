package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"ads-api/domain/dto"
	"ads-api/domain/services"
	"ads-api/pkg/logger"
	"ads-api/pkg/utils"
)

// AdminHandler งาน operator หลัง import definitions ใหม่
type AdminHandler struct {
	fieldService services.FieldDefinitionService
}

func NewAdminHandler(fieldService services.FieldDefinitionService) *AdminHandler {
	return &AdminHandler{fieldService: fieldService}
}

// InvalidateFields ล้าง cache definitions ของ category (ทุก instance)
func (h *AdminHandler) InvalidateFields(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid category ID")
	}

	if err := h.fieldService.Invalidate(ctx, id); err != nil {
		logger.ErrorContext(ctx, "Failed to invalidate field cache", "category_id", id, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	user, _ := utils.GetUserFromContext(c)
	if user != nil {
		logger.InfoContext(ctx, "Field cache invalidated by admin", "category_id", id, "admin_id", user.ID)
	}

	return utils.SuccessResponse(c, dto.InvalidateFieldsResponse{CategoryID: id, Invalidated: true})
}
