package serviceimpl

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"ads-api/application/fieldrules"
	"ads-api/application/fieldvalues"
	"ads-api/domain/models"
	"ads-api/domain/ports"
	"ads-api/domain/repositories"
	"ads-api/domain/services"
	"ads-api/pkg/logger"
)

type AdServiceImpl struct {
	adRepo         repositories.AdRepository
	fieldValueRepo repositories.AdFieldValueRepository
	validator      *fieldrules.Validator
	coercer        *fieldvalues.Coercer
	events         ports.EventPublisherPort
}

func NewAdService(
	adRepo repositories.AdRepository,
	fieldValueRepo repositories.AdFieldValueRepository,
	validator *fieldrules.Validator,
	coercer *fieldvalues.Coercer,
	events ports.EventPublisherPort,
) services.AdService {
	if events == nil {
		events = ports.NoopEventPublisher{}
	}
	return &AdServiceImpl{
		adRepo:         adRepo,
		fieldValueRepo: fieldValueRepo,
		validator:      validator,
		coercer:        coercer,
		events:         events,
	}
}

func (s *AdServiceImpl) CreateAd(ctx context.Context, userID uuid.UUID, input map[string]any) (*models.AdDetail, error) {
	verrs, err := s.validator.Validate(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("validate ad: %w", err)
	}
	if verrs != nil {
		logger.InfoContext(ctx, "Ad validation failed", "user_id", userID, "fields", len(verrs))
		return nil, verrs
	}

	categoryID, _ := fieldrules.ParseCategoryID(input)
	ad := &models.Ad{
		ID:          uuid.New(),
		UserID:      userID,
		CategoryID:  categoryID,
		Title:       strings.TrimSpace(input[fieldrules.KeyTitle].(string)),
		Description: strings.TrimSpace(input[fieldrules.KeyDescription].(string)),
		Price:       priceFrom(input),
		Status:      statusFrom(input),
	}

	rows, err := s.coercer.Coerce(ctx, categoryID, input)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to coerce field values", "category_id", categoryID, "error", err)
		return nil, fmt.Errorf("%w: %w", services.ErrAdCreateFailed, err)
	}

	if err := s.adRepo.CreateWithFieldValues(ctx, ad, rows); err != nil {
		logger.ErrorContext(ctx, "Failed to create ad",
			"user_id", userID,
			"category_id", categoryID,
			"fields", len(rows),
			"error", err,
		)
		return nil, fmt.Errorf("%w: %w", services.ErrAdCreateFailed, err)
	}

	logger.InfoContext(ctx, "Ad created", "ad_id", ad.ID, "category_id", categoryID, "fields", len(rows))
	s.publishCreated(ctx, ad, len(rows))

	return s.GetByID(ctx, ad.ID)
}

// publishCreated หลัง commit แล้ว ถ้าส่งไม่ได้แค่ log (ad ยังอยู่)
func (s *AdServiceImpl) publishCreated(ctx context.Context, ad *models.Ad, fieldCount int) {
	event := &ports.AdCreatedEvent{
		AdID:       ad.ID.String(),
		UserID:     ad.UserID.String(),
		CategoryID: ad.CategoryID.String(),
		Status:     string(ad.Status),
		FieldCount: fieldCount,
		CreatedAt:  ad.CreatedAt,
	}
	if err := s.events.PublishAdCreated(ctx, event); err != nil {
		logger.WarnContext(ctx, "Failed to publish ad created event", "ad_id", ad.ID, "error", err)
	}
}

func (s *AdServiceImpl) GetByID(ctx context.Context, id uuid.UUID) (*models.AdDetail, error) {
	ad, err := s.adRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, services.ErrAdNotFound
		}
		return nil, fmt.Errorf("get ad: %w", err)
	}
	return s.detail(ctx, ad)
}

func (s *AdServiceImpl) ListByUser(ctx context.Context, userID uuid.UUID, status *models.AdStatus) ([]*models.AdDetail, error) {
	ads, err := s.adRepo.ListByUser(ctx, userID, status)
	if err != nil {
		return nil, fmt.Errorf("list ads: %w", err)
	}

	out := make([]*models.AdDetail, 0, len(ads))
	for _, ad := range ads {
		d, err := s.detail(ctx, ad)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

func (s *AdServiceImpl) detail(ctx context.Context, ad *models.Ad) (*models.AdDetail, error) {
	rows, err := s.fieldValueRepo.ListByAd(ctx, ad.ID)
	if err != nil {
		return nil, fmt.Errorf("read field values: %w", err)
	}

	fields, err := fieldvalues.Project(rows)
	if err != nil {
		logger.ErrorContext(ctx, "Field value integrity error", "ad_id", ad.ID, "error", err)
		return nil, err
	}

	return &models.AdDetail{Ad: ad, DynamicFields: fields}, nil
}

func priceFrom(input map[string]any) *float64 {
	raw := input[fieldrules.KeyPrice]
	if fieldrules.IsEmpty(raw) {
		return nil
	}
	f, ok := fieldrules.AsNumber(raw)
	if !ok {
		return nil
	}
	return &f
}

func statusFrom(input map[string]any) models.AdStatus {
	if s, ok := input[fieldrules.KeyStatus].(string); ok && strings.TrimSpace(s) != "" {
		return models.AdStatus(s)
	}
	return models.AdStatusPublished
}
