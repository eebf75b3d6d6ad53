package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"ads-api/application/fieldrules"
	"ads-api/domain/dto"
	"ads-api/domain/services"
	"ads-api/pkg/logger"
	"ads-api/pkg/utils"
)

const (
	msgCreateFailed = "Failed to create ad due to database error"
	msgTryLater     = "Please try again later"
)

type AdHandler struct {
	adService services.AdService
	debug     bool
}

func NewAdHandler(adService services.AdService, debug bool) *AdHandler {
	return &AdHandler{
		adService: adService,
		debug:     debug,
	}
}

// Create ลงประกาศใหม่: static fields + dynamic attributes ของ category
func (h *AdHandler) Create(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "User not authenticated")
	}

	input := map[string]any{}
	if err := c.BodyParser(&input); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	detail, err := h.adService.CreateAd(ctx, user.ID, input)
	if err != nil {
		var verrs fieldrules.ValidationErrors
		switch {
		case errors.As(err, &verrs):
			return utils.ValidationErrorResponse(c, verrs)
		case errors.Is(err, services.ErrAdCreateFailed):
			return utils.InternalErrorWithDetail(c, msgCreateFailed, h.errorDetail(err))
		default:
			logger.ErrorContext(ctx, "Ad creation failed", "error", err)
			return utils.InternalServerErrorResponse(c)
		}
	}

	return utils.CreatedResponse(c, dto.AdDetailToAdResponse(detail))
}

// GetByID ดึง ad พร้อม dynamic fields
func (h *AdHandler) GetByID(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid ad ID")
	}

	detail, err := h.adService.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, services.ErrAdNotFound) {
			return utils.NotFoundResponse(c, "Ad not found")
		}
		logger.ErrorContext(ctx, "Failed to read ad", "ad_id", id, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, dto.AdDetailToAdResponse(detail))
}

// ListMine ads ของผู้ใช้ที่ login ใหม่สุดก่อน
func (h *AdHandler) ListMine(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "User not authenticated")
	}

	var req dto.ListMyAdsRequest
	if err := c.QueryParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid query parameters")
	}
	if err := utils.ValidateStruct(&req); err != nil {
		errs := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", errs)
		return utils.ValidationErrorResponse(c, errs)
	}

	details, err := h.adService.ListByUser(ctx, user.ID, req.StatusFilter())
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list ads", "user_id", user.ID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, dto.AdDetailsToAdListResponse(details))
}

func (h *AdHandler) errorDetail(err error) string {
	if h.debug {
		return err.Error()
	}
	return msgTryLater
}
