package serviceimpl_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"ads-api/application/fieldrules"
	"ads-api/application/fieldvalues"
	"ads-api/application/serviceimpl"
	"ads-api/domain/models"
	"ads-api/domain/ports"
	"ads-api/domain/repositories"
	"ads-api/domain/services"
	"ads-api/infrastructure/memory"
	"ads-api/infrastructure/postgres"
	"ads-api/pkg/testutil"
)

type countingFieldRepo struct {
	repositories.CategoryFieldRepository
	mu    sync.Mutex
	lists int
}

func (r *countingFieldRepo) ListApplicable(ctx context.Context, categoryID uuid.UUID) ([]models.CategoryField, error) {
	r.mu.Lock()
	r.lists++
	r.mu.Unlock()
	return r.CategoryFieldRepository.ListApplicable(ctx, categoryID)
}

func (r *countingFieldRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lists
}

type recordingEvents struct {
	mu          sync.Mutex
	created     []*ports.AdCreatedEvent
	invalidated []*ports.FieldsInvalidatedEvent
	err         error
}

func (r *recordingEvents) PublishAdCreated(_ context.Context, event *ports.AdCreatedEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.created = append(r.created, event)
	return r.err
}

func (r *recordingEvents) PublishFieldsInvalidated(_ context.Context, event *ports.FieldsInvalidatedEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.invalidated = append(r.invalidated, event)
	return r.err
}

// brokenCache ทุก operation พัง
type brokenCache struct{}

var errCacheDown = errors.New("cache unavailable")

func (brokenCache) Get(context.Context, string, any) (bool, error) { return false, errCacheDown }
func (brokenCache) Set(context.Context, string, any, time.Duration) error { return errCacheDown }
func (brokenCache) Invalidate(context.Context, ...string) error { return errCacheDown }
func (brokenCache) InvalidatePrefix(context.Context, string) (int64, error) { return 0, errCacheDown }

const testInstance = "instance-a"

type testEnv struct {
	db        *gorm.DB
	fixture   *testutil.Fixture
	cache     *memory.Cache
	fieldRepo *countingFieldRepo
	events    *recordingEvents

	fields     services.FieldDefinitionService
	ads        services.AdService
	categories services.CategoryService
	adRepo     repositories.AdRepository
	valueRepo  repositories.AdFieldValueRepository
}

func newTestEnv(t *testing.T) *testEnv {
	return newTestEnvWithCache(t, nil)
}

func newTestEnvWithCache(t *testing.T, cache ports.CachePort) *testEnv {
	t.Helper()

	db := testutil.NewDB(t)
	env := &testEnv{
		db:        db,
		fixture:   testutil.Seed(t, db),
		fieldRepo: &countingFieldRepo{CategoryFieldRepository: postgres.NewCategoryFieldRepository(db)},
		events:    &recordingEvents{},
	}
	if cache == nil {
		env.cache = memory.NewCache()
		cache = env.cache
	}

	categoryRepo := postgres.NewCategoryRepository(db)
	env.valueRepo = postgres.NewAdFieldValueRepository(db)
	env.adRepo = postgres.NewAdRepository(db, env.valueRepo)

	env.fields = serviceimpl.NewFieldDefinitionService(env.fieldRepo, cache, env.events, 0, testInstance)
	validator := fieldrules.NewValidator(fieldrules.NewBuilder(env.fields), categoryRepo)
	coercer := fieldvalues.NewCoercer(env.fields)

	env.ads = serviceimpl.NewAdService(env.adRepo, env.valueRepo, validator, coercer, env.events)
	env.categories = serviceimpl.NewCategoryService(categoryRepo, env.fields)
	return env
}
