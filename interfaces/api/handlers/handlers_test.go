package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ads-api/application/fieldrules"
	"ads-api/application/fieldvalues"
	"ads-api/application/serviceimpl"
	"ads-api/domain/models"
	"ads-api/domain/ports"
	"ads-api/domain/services"
	"ads-api/infrastructure/memory"
	"ads-api/infrastructure/postgres"
	"ads-api/interfaces/api/handlers"
	"ads-api/interfaces/api/middleware"
	"ads-api/interfaces/api/routes"
	"ads-api/pkg/testutil"
	"ads-api/pkg/utils"
)

const testSecret = "test-secret"

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string          `json:"code"`
		Message string          `json:"message"`
		Details json.RawMessage `json:"details"`
	} `json:"error"`
}

type apiEnv struct {
	app     *fiber.App
	fixture *testutil.Fixture
	userID  uuid.UUID
	token   string
	admin   string
}

func newApp(t *testing.T, svc *handlers.Services) *fiber.App {
	t.Helper()
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	app.Use(middleware.RequestIDMiddleware())
	routes.SetupRoutes(app, handlers.NewHandlers(svc), testSecret)
	return app
}

func token(t *testing.T, userID uuid.UUID, role string) string {
	t.Helper()
	tok, err := utils.GenerateToken(userID, "someone@example.com", role, testSecret, time.Hour)
	require.NoError(t, err)
	return tok
}

func newAPIEnv(t *testing.T) *apiEnv {
	t.Helper()

	db := testutil.NewDB(t)
	fx := testutil.Seed(t, db)

	categoryRepo := postgres.NewCategoryRepository(db)
	valueRepo := postgres.NewAdFieldValueRepository(db)
	fields := serviceimpl.NewFieldDefinitionService(
		postgres.NewCategoryFieldRepository(db), memory.NewCache(), ports.NoopEventPublisher{}, time.Hour, "test")
	validator := fieldrules.NewValidator(fieldrules.NewBuilder(fields), categoryRepo)

	svc := &handlers.Services{
		AdService: serviceimpl.NewAdService(postgres.NewAdRepository(db, valueRepo), valueRepo, validator,
			fieldvalues.NewCoercer(fields), ports.NoopEventPublisher{}),
		CategoryService:        serviceimpl.NewCategoryService(categoryRepo, fields),
		FieldDefinitionService: fields,
		AppName:                "ads-test",
	}

	userID := uuid.New()
	return &apiEnv{
		app:     newApp(t, svc),
		fixture: fx,
		userID:  userID,
		token:   token(t, userID, "user"),
		admin:   token(t, uuid.New(), "admin"),
	}
}

func do(t *testing.T, app *fiber.App, method, path, tok string, body any) (int, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		switch b := body.(type) {
		case string:
			reader = bytes.NewBufferString(b)
		default:
			raw, err := json.Marshal(b)
			require.NoError(t, err)
			reader = bytes.NewReader(raw)
		}
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

type adPayload struct {
	ID     uuid.UUID `json:"id"`
	Title  string    `json:"title"`
	Status string    `json:"status"`
	Price  *float64  `json:"price"`

	Category *struct {
		ID   uuid.UUID `json:"id"`
		Name string    `json:"name"`
	} `json:"category"`

	DynamicFields map[string]struct {
		Name  string `json:"name"`
		Value any    `json:"value"`
		Type  string `json:"type"`
	} `json:"dynamicFields"`
}

func TestCreateAd_RequiresAuth(t *testing.T) {
	env := newAPIEnv(t)

	status, body := do(t, env.app, http.MethodPost, "/api/v1/ads", "", env.fixture.CarInput())
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, utils.ErrCodeUnauthorized, body.Error.Code)
}

func TestCreateAd_ValidationErrors(t *testing.T) {
	env := newAPIEnv(t)

	in := env.fixture.CarInput()
	delete(in, "year")
	delete(in, "condition")

	status, body := do(t, env.app, http.MethodPost, "/api/v1/ads", env.token, in)
	require.Equal(t, http.StatusBadRequest, status)
	require.NotNil(t, body.Error)
	assert.Equal(t, utils.ErrCodeValidation, body.Error.Code)

	var details map[string][]string
	require.NoError(t, json.Unmarshal(body.Error.Details, &details))
	assert.Equal(t, []string{"The Year field is required."}, details["year"])
	assert.Equal(t, []string{"The Condition field is required."}, details["condition"])
}

func TestCreateAd_InvalidJSON(t *testing.T) {
	env := newAPIEnv(t)

	status, body := do(t, env.app, http.MethodPost, "/api/v1/ads", env.token, "{not json")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, utils.ErrCodeBadRequest, body.Error.Code)
}

func TestCreateAndReadAd(t *testing.T) {
	env := newAPIEnv(t)

	in := env.fixture.CarInput()
	in["mileage"] = 15000.5
	in["is_negotiable"] = "false"
	in["vin"] = "1HGBH41JXMN109186"

	status, body := do(t, env.app, http.MethodPost, "/api/v1/ads", env.token, in)
	require.Equal(t, http.StatusCreated, status)

	var created adPayload
	require.NoError(t, json.Unmarshal(body.Data, &created))
	assert.Equal(t, "Honda Civic 2020", created.Title)
	assert.Equal(t, "published", created.Status)
	require.NotNil(t, created.Category)
	assert.Equal(t, "Cars & Trucks", created.Category.Name)
	require.Len(t, created.DynamicFields, 5)
	assert.Equal(t, 2020.0, created.DynamicFields["year"].Value)
	assert.Equal(t, "integer", created.DynamicFields["year"].Type)
	assert.Equal(t, false, created.DynamicFields["is_negotiable"].Value)
	assert.Equal(t, 15000.5, created.DynamicFields["mileage"].Value)

	status, body = do(t, env.app, http.MethodGet, "/api/v1/ads/"+created.ID.String(), "", nil)
	require.Equal(t, http.StatusOK, status)

	var read adPayload
	require.NoError(t, json.Unmarshal(body.Data, &read))
	assert.Equal(t, created.DynamicFields, read.DynamicFields)
}

func TestGetAd_Errors(t *testing.T) {
	env := newAPIEnv(t)

	status, _ := do(t, env.app, http.MethodGet, "/api/v1/ads/not-a-uuid", "", nil)
	assert.Equal(t, http.StatusBadRequest, status)

	status, body := do(t, env.app, http.MethodGet, "/api/v1/ads/"+uuid.NewString(), "", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, utils.ErrCodeNotFound, body.Error.Code)
}

func TestListMine(t *testing.T) {
	env := newAPIEnv(t)

	draft := env.fixture.CarInput()
	draft["status"] = "draft"
	for _, in := range []map[string]any{env.fixture.CarInput(), draft} {
		status, _ := do(t, env.app, http.MethodPost, "/api/v1/ads", env.token, in)
		require.Equal(t, http.StatusCreated, status)
	}

	status, body := do(t, env.app, http.MethodGet, "/api/v1/ads/mine", env.token, nil)
	require.Equal(t, http.StatusOK, status)
	var all struct {
		Ads []adPayload `json:"ads"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &all))
	assert.Len(t, all.Ads, 2)

	status, body = do(t, env.app, http.MethodGet, "/api/v1/ads/mine?status=draft", env.token, nil)
	require.Equal(t, http.StatusOK, status)
	var drafts struct {
		Ads []adPayload `json:"ads"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &drafts))
	require.Len(t, drafts.Ads, 1)
	assert.Equal(t, "draft", drafts.Ads[0].Status)

	status, body = do(t, env.app, http.MethodGet, "/api/v1/ads/mine?status=bogus", env.token, nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, utils.ErrCodeValidation, body.Error.Code)

	other := token(t, uuid.New(), "user")
	status, body = do(t, env.app, http.MethodGet, "/api/v1/ads/mine", other, nil)
	require.Equal(t, http.StatusOK, status)
	var none struct {
		Ads []adPayload `json:"ads"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &none))
	assert.Empty(t, none.Ads)
}

func TestCategoryFields(t *testing.T) {
	env := newAPIEnv(t)

	status, body := do(t, env.app, http.MethodGet, fmt.Sprintf("/api/v1/categories/%s/fields", env.fixture.Cars.ID), "", nil)
	require.Equal(t, http.StatusOK, status)

	var resp struct {
		Fields []struct {
			Attribute string `json:"attribute"`
			Options   []struct {
				Value string `json:"value"`
			} `json:"options"`
		} `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &resp))

	attrs := make([]string, 0, len(resp.Fields))
	for _, f := range resp.Fields {
		attrs = append(attrs, f.Attribute)
	}
	assert.Equal(t, []string{"year", "condition", "mileage", "is_negotiable", "vin", "contact_hours"}, attrs)
	assert.Len(t, resp.Fields[1].Options, 2)

	status, _ = do(t, env.app, http.MethodGet, fmt.Sprintf("/api/v1/categories/%s/fields", env.fixture.Archived.ID), "", nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestCategoryBrowsing(t *testing.T) {
	env := newAPIEnv(t)

	status, body := do(t, env.app, http.MethodGet, "/api/v1/categories", "", nil)
	require.Equal(t, http.StatusOK, status)
	var tree struct {
		Categories []struct {
			Name     string `json:"name"`
			Children []struct {
				Name string `json:"name"`
			} `json:"children"`
		} `json:"categories"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &tree))
	require.Len(t, tree.Categories, 2)
	assert.Equal(t, "Vehicles", tree.Categories[0].Name)
	require.Len(t, tree.Categories[0].Children, 1)

	status, _ = do(t, env.app, http.MethodGet, "/api/v1/categories/slug/cars-trucks", "", nil)
	assert.Equal(t, http.StatusOK, status)

	status, _ = do(t, env.app, http.MethodGet, "/api/v1/categories/"+uuid.NewString(), "", nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestInvalidateFields_AdminOnly(t *testing.T) {
	env := newAPIEnv(t)
	path := fmt.Sprintf("/api/v1/admin/categories/%s/fields/invalidate", env.fixture.Cars.ID)

	status, _ := do(t, env.app, http.MethodPost, path, "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	status, body := do(t, env.app, http.MethodPost, path, env.token, nil)
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, utils.ErrCodeForbidden, body.Error.Code)

	status, body = do(t, env.app, http.MethodPost, path, env.admin, nil)
	require.Equal(t, http.StatusOK, status)
	var resp struct {
		Invalidated bool `json:"invalidated"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &resp))
	assert.True(t, resp.Invalidated)
}

// failingAdService ทุก create พังที่ชั้น database
type failingAdService struct {
	services.AdService
}

func (failingAdService) CreateAd(context.Context, uuid.UUID, map[string]any) (*models.AdDetail, error) {
	return nil, fmt.Errorf("%w: %w", services.ErrAdCreateFailed, errors.New("UNIQUE constraint failed"))
}

func TestCreateAd_DatabaseFailure(t *testing.T) {
	userToken := token(t, uuid.New(), "user")

	tests := []struct {
		name   string
		debug  bool
		detail string
	}{
		{"hides detail", false, "Please try again later"},
		{"debug shows detail", true, "failed to create ad: UNIQUE constraint failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newApp(t, &handlers.Services{AdService: failingAdService{}, Debug: tt.debug})

			status, body := do(t, app, http.MethodPost, "/api/v1/ads", userToken, map[string]any{"title": "x"})
			require.Equal(t, http.StatusInternalServerError, status)
			assert.Equal(t, "Failed to create ad due to database error", body.Error.Message)

			var detail string
			require.NoError(t, json.Unmarshal(body.Error.Details, &detail))
			assert.Equal(t, tt.detail, detail)
		})
	}
}

func TestHealth(t *testing.T) {
	healthy := handlers.HealthChecker{Name: "database", Check: func(context.Context) error { return nil }}
	broken := handlers.HealthChecker{Name: "redis", Check: func(context.Context) error { return errors.New("refused") }}

	app := newApp(t, &handlers.Services{AppName: "ads-test", HealthCheckers: []handlers.HealthChecker{healthy}})
	status, body := do(t, app, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.True(t, body.Success)

	app = newApp(t, &handlers.Services{AppName: "ads-test", HealthCheckers: []handlers.HealthChecker{healthy, broken}})
	status, body = do(t, app, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusServiceUnavailable, status)
	assert.Equal(t, utils.ErrCodeUnavailable, body.Error.Code)
}
