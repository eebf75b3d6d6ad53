package fieldvalues

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ads-api/domain/models"
)

func TestProject_RoundTripsNativeTypes(t *testing.T) {
	defs := []models.CategoryField{
		field("year", models.ValueTypeInteger),
		field("condition", models.ValueTypeEnum),
		field("mileage", models.ValueTypeFloat),
		field("is_negotiable", models.ValueTypeBoolean),
		field("vin", models.ValueTypeString),
	}
	input := []any{2020.0, "used", 15000.5, "false", "1HGBH41JXMN109186"}

	rows := make([]models.AdFieldValue, 0, len(defs))
	for i := range defs {
		row, err := CoerceValue(&defs[i], input[i])
		require.NoError(t, err)
		row.CategoryField = &defs[i]
		rows = append(rows, row)
	}

	got, err := Project(rows)
	require.NoError(t, err)

	want := map[string]models.ProjectedValue{
		"year":          {Name: "year", Value: int64(2020), Type: models.ValueTypeInteger},
		"condition":     {Name: "condition", Value: "used", Type: models.ValueTypeEnum},
		"mileage":       {Name: "mileage", Value: 15000.5, Type: models.ValueTypeFloat},
		"is_negotiable": {Name: "is_negotiable", Value: false, Type: models.ValueTypeBoolean},
		"vin":           {Name: "vin", Value: "1HGBH41JXMN109186", Type: models.ValueTypeString},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("projection mismatch (-want +got):\n%s", diff)
	}
}

func TestProject_IntegrityViolations(t *testing.T) {
	n := int64(1)
	s := "x"
	intDef := field("year", models.ValueTypeInteger)

	tests := []struct {
		name string
		row  models.AdFieldValue
	}{
		{"no definition", models.AdFieldValue{ID: uuid.New(), ValueInteger: &n}},
		{"no populated column", models.AdFieldValue{CategoryField: &intDef}},
		{"two populated columns", models.AdFieldValue{CategoryField: &intDef, ValueInteger: &n, ValueString: &s}},
		{"wrong column", models.AdFieldValue{CategoryField: &intDef, ValueString: &s}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Project([]models.AdFieldValue{tt.row})
			assert.ErrorIs(t, err, ErrIntegrity)
		})
	}
}

func TestProject_Empty(t *testing.T) {
	got, err := Project(nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}
