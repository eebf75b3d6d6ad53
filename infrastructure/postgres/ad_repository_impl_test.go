package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ads-api/domain/models"
	"ads-api/domain/repositories"
	"ads-api/infrastructure/postgres"
	"ads-api/pkg/testutil"
)

func newAd(categoryID uuid.UUID) *models.Ad {
	return &models.Ad{
		UserID:      uuid.New(),
		CategoryID:  categoryID,
		Title:       "Honda Civic",
		Description: "Clean",
		Status:      models.AdStatusPublished,
	}
}

func intValue(fieldID uuid.UUID, n int64) models.AdFieldValue {
	return models.AdFieldValue{CategoryFieldID: fieldID, ValueInteger: &n}
}

func TestCreateWithFieldValues_Commits(t *testing.T) {
	db := testutil.NewDB(t)
	fx := testutil.Seed(t, db)
	values := postgres.NewAdFieldValueRepository(db)
	ads := postgres.NewAdRepository(db, values)
	ctx := context.Background()

	ad := newAd(fx.Cars.ID)
	condition := "used"
	rows := []models.AdFieldValue{
		intValue(fx.Fields["year"].ID, 2020),
		{CategoryFieldID: fx.Fields["condition"].ID, ValueString: &condition},
	}
	require.NoError(t, ads.CreateWithFieldValues(ctx, ad, rows))

	stored, err := values.ListByAd(ctx, ad.ID)
	require.NoError(t, err)
	require.Len(t, stored, 2)
	for _, row := range stored {
		assert.Equal(t, ad.ID, row.AdID)
		require.NotNil(t, row.CategoryField)
	}
}

func TestCreateWithFieldValues_RollsBackOnRowFailure(t *testing.T) {
	db := testutil.NewDB(t)
	fx := testutil.Seed(t, db)
	ads := postgres.NewAdRepository(db, postgres.NewAdFieldValueRepository(db))
	ctx := context.Background()

	// (ad_id, category_field_id) ซ้ำ ชน unique index
	yearID := fx.Fields["year"].ID
	ad := newAd(fx.Cars.ID)
	err := ads.CreateWithFieldValues(ctx, ad, []models.AdFieldValue{intValue(yearID, 2020), intValue(yearID, 2021)})
	require.Error(t, err)

	_, err = ads.GetByID(ctx, ad.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	var count int64
	require.NoError(t, db.Model(&models.AdFieldValue{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCreateWithFieldValues_UnknownFieldRollsBack(t *testing.T) {
	db := testutil.NewDB(t)
	fx := testutil.Seed(t, db)
	ads := postgres.NewAdRepository(db, postgres.NewAdFieldValueRepository(db))

	ad := newAd(fx.Cars.ID)
	err := ads.CreateWithFieldValues(context.Background(), ad, []models.AdFieldValue{intValue(uuid.New(), 1)})
	require.Error(t, err)

	var count int64
	require.NoError(t, db.Model(&models.Ad{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestPersist_RequiresTransaction(t *testing.T) {
	db := testutil.NewDB(t)
	fx := testutil.Seed(t, db)
	values := postgres.NewAdFieldValueRepository(db)

	err := values.Persist(context.Background(), newAd(fx.Cars.ID), []models.AdFieldValue{intValue(fx.Fields["year"].ID, 2020)})
	assert.ErrorIs(t, err, postgres.ErrNoTransaction)
}

func TestAdRepository_ListByUserNewestFirst(t *testing.T) {
	db := testutil.NewDB(t)
	fx := testutil.Seed(t, db)
	ads := postgres.NewAdRepository(db, postgres.NewAdFieldValueRepository(db))
	ctx := context.Background()

	userID := uuid.New()
	older, newer := newAd(fx.Cars.ID), newAd(fx.Phones.ID)
	older.UserID, newer.UserID = userID, userID
	newer.Status = models.AdStatusDraft
	require.NoError(t, ads.CreateWithFieldValues(ctx, older, nil))
	require.NoError(t, db.Model(older).Update("created_at", older.CreatedAt.Add(-time.Minute)).Error)
	require.NoError(t, ads.CreateWithFieldValues(ctx, newer, nil))

	list, err := ads.ListByUser(ctx, userID, nil)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, newer.ID, list[0].ID)
	assert.Equal(t, older.ID, list[1].ID)
	assert.Equal(t, "Mobile Phones", list[0].Category.Name)

	draft := models.AdStatusDraft
	drafts, err := ads.ListByUser(ctx, userID, &draft)
	require.NoError(t, err)
	require.Len(t, drafts, 1)
	assert.Equal(t, newer.ID, drafts[0].ID)
}
