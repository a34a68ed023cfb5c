package utils

import (
	"helpora-service/internal/pkg/dto/requests"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeSaveProfileRequest(t *testing.T) {
	t.Run("Text Fields Trimmed", func(t *testing.T) {
		request := &requests.SaveProviderProfile{
			Name:     "  Nimali Perera  ",
			Category: " PetCare ",
			District: " Colombo ",
		}

		SanitizeSaveProfileRequest(request)

		assert.Equal(t, "Nimali Perera", request.Name)
		assert.Equal(t, "PetCare", request.Category)
		assert.Equal(t, "Colombo", request.District)
	})

	t.Run("Enums Lowercased", func(t *testing.T) {
		request := &requests.SaveProviderProfile{
			Gender:       " Female ",
			Availability: "YES",
		}

		SanitizeSaveProfileRequest(request)

		assert.Equal(t, "female", request.Gender)
		assert.Equal(t, "yes", request.Availability)
	})

	t.Run("List Entries Trimmed And Empties Dropped", func(t *testing.T) {
		request := &requests.SaveProviderProfile{
			Services:  []string{"  Walking  ", "", "Grooming"},
			Languages: []string{" Sinhala "},
		}

		SanitizeSaveProfileRequest(request)

		assert.Equal(t, []string{"Walking", "Grooming"}, request.Services)
		assert.Equal(t, []string{"Sinhala"}, request.Languages)
	})
}

func TestValidateStructCustomTags(t *testing.T) {
	base := func() *requests.SaveProviderProfile {
		return &requests.SaveProviderProfile{
			Name:     "Nimali Perera",
			Category: "PetCare",
			District: "Colombo",
		}
	}

	t.Run("Valid Request Passes", func(t *testing.T) {
		assert.NoError(t, ValidateStruct(base()))
	})

	t.Run("Unknown Category Fails", func(t *testing.T) {
		request := base()
		request.Category = "Gardening"
		assert.Error(t, ValidateStruct(request))
	})

	t.Run("Unknown District Fails", func(t *testing.T) {
		request := base()
		request.District = "Atlantis"
		assert.Error(t, ValidateStruct(request))
	})

	t.Run("Bad Availability Fails", func(t *testing.T) {
		request := base()
		request.Availability = "maybe"
		assert.Error(t, ValidateStruct(request))
	})
}
