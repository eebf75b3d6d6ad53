package serviceimpl

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/gosimple/slug"

	"ads-api/application/fieldrules"
	"ads-api/domain/models"
	"ads-api/domain/repositories"
	"ads-api/domain/services"
	"ads-api/pkg/logger"
)

type CategoryServiceImpl struct {
	categoryRepo repositories.CategoryRepository
	fields       services.FieldDefinitionService
}

func NewCategoryService(categoryRepo repositories.CategoryRepository, fields services.FieldDefinitionService) services.CategoryService {
	return &CategoryServiceImpl{
		categoryRepo: categoryRepo,
		fields:       fields,
	}
}

func (s *CategoryServiceImpl) GetByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.lookupError(ctx, err, "category_id", id.String())
	}
	return category, nil
}

func (s *CategoryServiceImpl) GetBySlug(ctx context.Context, slugStr string) (*models.Category, error) {
	normalized := slug.Make(slugStr)
	category, err := s.categoryRepo.GetBySlug(ctx, normalized)
	if err != nil {
		return nil, s.lookupError(ctx, err, "slug", normalized)
	}
	return category, nil
}

func (s *CategoryServiceImpl) lookupError(ctx context.Context, err error, key, value string) error {
	if errors.Is(err, repositories.ErrNotFound) {
		logger.WarnContext(ctx, "Category not found", key, value)
		return services.ErrCategoryNotFound
	}
	return fmt.Errorf("get category: %w", err)
}

func (s *CategoryServiceImpl) ListTree(ctx context.Context) ([]*models.Category, error) {
	return s.categoryRepo.ListActiveTree(ctx)
}

func (s *CategoryServiceImpl) PostingFields(ctx context.Context, id uuid.UUID) ([]models.CategoryField, error) {
	category, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !category.IsActive {
		return nil, services.ErrCategoryNotFound
	}

	defs, err := s.fields.DefinitionsForCategory(ctx, id)
	if err != nil {
		return nil, err
	}

	out := make([]models.CategoryField, 0, len(defs))
	for _, def := range defs {
		if def.IsExcludedFromPost() || fieldrules.IsStaticKey(def.Attribute) {
			continue
		}
		out = append(out, def)
	}
	return out, nil
}
