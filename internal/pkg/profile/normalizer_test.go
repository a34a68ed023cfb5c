package profile

import (
	"testing"

	"helpora-service/internal/app/models"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDefaults(t *testing.T) {
	t.Run("Empty Profile Gets Defaults", func(t *testing.T) {
		out := Normalize(models.ProviderProfile{}, CategoryPetCare)

		assert.Equal(t, []float64{500, 2000}, out.PayRate)
		assert.Equal(t, PlaceholderPhotoRef, out.PhotoRef)
		assert.Equal(t, "no", out.Availability)
		assert.Equal(t, CategoryPetCare, out.Category)
		assert.NotNil(t, out.Languages)
		assert.NotNil(t, out.Services)
		assert.NotNil(t, out.PetTypes)
		assert.NotNil(t, out.AgeGroups)
		assert.NotNil(t, out.Syllabi)
		assert.NotNil(t, out.Subjects)
		assert.NotNil(t, out.Grades)
	})

	t.Run("Existing Values Preserved", func(t *testing.T) {
		in := models.ProviderProfile{
			Name:         "  Kasun Silva ",
			PayRate:      []float64{700, 900},
			PhotoRef:     "/uploads/kasun.png",
			Availability: "yes",
			Languages:    []string{"Tamil"},
		}

		out := Normalize(in, CategoryElderCare)

		assert.Equal(t, "Kasun Silva", out.Name)
		assert.Equal(t, []float64{700, 900}, out.PayRate)
		assert.Equal(t, "/uploads/kasun.png", out.PhotoRef)
		assert.Equal(t, "yes", out.Availability)
		assert.Equal(t, []string{"Tamil"}, out.Languages)
	})
}

func TestMergeStored(t *testing.T) {
	stored := completeProfile(CategoryHouseCleaning)

	t.Run("Omitted Fields Carry Forward", func(t *testing.T) {
		in := models.ProviderProfile{
			Name:     "Nimali Perera",
			Category: CategoryHouseCleaning,
			District: "Colombo",
		}

		out := MergeStored(in, stored)

		assert.Equal(t, stored.NIC, out.NIC)
		assert.Equal(t, stored.PoliceClearanceRef, out.PoliceClearanceRef)
		assert.Equal(t, stored.BirthCertificateRef, out.BirthCertificateRef)
		assert.Equal(t, stored.Gender, out.Gender)
		assert.Equal(t, stored.Availability, out.Availability)
		assert.Equal(t, stored.PhotoRef, out.PhotoRef)
	})

	t.Run("Supplied Fields Win", func(t *testing.T) {
		in := completeProfile(CategoryHouseCleaning)
		in.NIC = "887766554V"
		in.Availability = "no"

		out := MergeStored(in, stored)

		assert.Equal(t, "887766554V", out.NIC)
		assert.Equal(t, "no", out.Availability)
	})

	t.Run("Does Not Mutate Input", func(t *testing.T) {
		in := models.ProviderProfile{Name: "Nimali Perera"}
		MergeStored(in, stored)
		assert.Empty(t, in.NIC)
	})
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []models.ProviderProfile{
		{},
		{Name: " padded ", Gender: "Female", Availability: "YES"},
		completeProfile(CategoryEducation),
		{PayRate: []float64{100}},
		{Languages: []string{" Sinhala ", "", "English"}},
	}

	for _, in := range inputs {
		once := Normalize(in, CategoryChildCare)
		twice := Normalize(once, CategoryChildCare)
		assert.Equal(t, once, twice)
	}
}

func TestNormalizeDoesNotMutateInput(t *testing.T) {
	in := models.ProviderProfile{
		Name:      " padded ",
		Languages: []string{" Sinhala "},
		PayRate:   []float64{100, 200},
	}

	out := Normalize(in, CategoryHouseCleaning)
	out.Languages[0] = "changed"
	out.PayRate[0] = 999

	assert.Equal(t, " padded ", in.Name)
	assert.Equal(t, []string{" Sinhala "}, in.Languages)
	assert.Equal(t, []float64{100, 200}, in.PayRate)
}

func TestNormalizeLowercasesEnums(t *testing.T) {
	out := Normalize(models.ProviderProfile{Gender: "Male", Availability: "Yes"}, CategoryPetCare)

	assert.Equal(t, "male", out.Gender)
	assert.Equal(t, "yes", out.Availability)
}
