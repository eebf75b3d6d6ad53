package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"ads-api/domain/dto"
	"ads-api/domain/services"
	"ads-api/pkg/logger"
	"ads-api/pkg/utils"
)

type CategoryHandler struct {
	categoryService services.CategoryService
}

func NewCategoryHandler(categoryService services.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
	}
}

// ListTree categories ที่ active แบบ tree
func (h *CategoryHandler) ListTree(c *fiber.Ctx) error {
	ctx := c.UserContext()

	categories, err := h.categoryService.ListTree(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list categories tree", "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, dto.CategoryListResponse{
		Categories: dto.CategoriesToTreeResponses(categories),
	})
}

func (h *CategoryHandler) GetByID(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid category ID")
	}

	category, err := h.categoryService.GetByID(ctx, id)
	if err != nil {
		return h.lookupError(c, err)
	}

	return utils.SuccessResponse(c, dto.CategoryToCategoryResponse(category))
}

func (h *CategoryHandler) GetBySlug(c *fiber.Ctx) error {
	ctx := c.UserContext()

	slug := c.Params("slug")
	if slug == "" {
		return utils.BadRequestResponse(c, "Category slug is required")
	}

	category, err := h.categoryService.GetBySlug(ctx, slug)
	if err != nil {
		return h.lookupError(c, err)
	}

	return utils.SuccessResponse(c, dto.CategoryToCategoryResponse(category))
}

// Fields definitions สำหรับ render ฟอร์มลงประกาศ
func (h *CategoryHandler) Fields(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid category ID")
	}

	fields, err := h.categoryService.PostingFields(ctx, id)
	if err != nil {
		return h.lookupError(c, err)
	}

	return utils.SuccessResponse(c, dto.FieldsToCategoryFieldsResponse(id, fields))
}

func (h *CategoryHandler) lookupError(c *fiber.Ctx, err error) error {
	if errors.Is(err, services.ErrCategoryNotFound) {
		return utils.NotFoundResponse(c, "Category not found")
	}
	logger.ErrorContext(c.UserContext(), "Category lookup failed", "error", err)
	return utils.InternalServerErrorResponse(c)
}
