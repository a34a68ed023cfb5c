package catalogues

import (
	"context"
	"helpora-service/internal/pkg/exceptions"
	"helpora-service/internal/pkg/profile"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogueUsecase_StaticLists(t *testing.T) {
	uc := NewCatalogueUsecase()
	ctx := context.Background()

	assert.Len(t, uc.GetDistricts(ctx), 25)
	assert.Equal(t, []string{"Sinhala", "Tamil", "English"}, uc.GetLanguages(ctx))
	assert.Len(t, uc.GetCategories(ctx), 6)

	// Returned slices are copies; a caller mutating them must not poison
	// the policy tables.
	districts := uc.GetDistricts(ctx)
	districts[0] = "mutated"
	assert.NotEqual(t, "mutated", uc.GetDistricts(ctx)[0])
}

func TestCatalogueUsecase_CategoryCatalogue(t *testing.T) {
	uc := NewCatalogueUsecase()
	ctx := context.Background()

	t.Run("pet care carries services and pet types", func(t *testing.T) {
		catalogue, err := uc.GetCategoryCatalogue(ctx, profile.CategoryPetCare)
		require.NoError(t, err)
		assert.Equal(t, profile.CategoryPetCare, catalogue.Category)
		assert.NotEmpty(t, catalogue.Services)
		assert.NotEmpty(t, catalogue.PetTypes)
		assert.Empty(t, catalogue.Syllabi)
	})

	t.Run("education carries syllabi subjects and grades, no services", func(t *testing.T) {
		catalogue, err := uc.GetCategoryCatalogue(ctx, profile.CategoryEducation)
		require.NoError(t, err)
		assert.Empty(t, catalogue.Services)
		assert.NotEmpty(t, catalogue.Syllabi)
		assert.NotEmpty(t, catalogue.Subjects)
		assert.NotEmpty(t, catalogue.Grades)
	})

	t.Run("unknown category is a 404", func(t *testing.T) {
		_, err := uc.GetCategoryCatalogue(ctx, "Gardening")
		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, 404, customErr.StatusCode)
	})
}
