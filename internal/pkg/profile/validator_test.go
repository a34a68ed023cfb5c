package profile

import (
	"testing"

	"helpora-service/internal/app/models"

	"github.com/stretchr/testify/assert"
)

func completeProfile(category string) models.ProviderProfile {
	p := models.ProviderProfile{
		Name:                "Nimali Perera",
		Category:            category,
		District:            "Colombo",
		PayRate:             []float64{800, 1500},
		Languages:           []string{"Sinhala", "English"},
		Biography:           "Experienced and reliable.",
		PhotoRef:            "/uploads/nimali.png",
		NIC:                 "915672348V",
		PoliceClearanceRef:  "/uploads/clearance.pdf",
		BirthCertificateRef: "/uploads/birth.pdf",
		Gender:              "female",
		Availability:        "yes",
	}

	switch category {
	case CategoryPetCare:
		p.Services = []string{"Walking", "Grooming"}
		p.PetTypes = []string{"Dogs", "Cats"}
	case CategoryChildCare:
		p.Services = []string{"Day Care"}
		p.AgeGroups = []string{"Toddler"}
	case CategoryEducation:
		p.Syllabi = []string{"Local"}
		p.Subjects = []string{"Mathematics"}
		p.Grades = []string{"O/L"}
	default:
		p.Services = []string{PolicyFor(category).ServicesCatalogue[0]}
	}
	return p
}

func TestValidateCompleteProfiles(t *testing.T) {
	for _, category := range Categories {
		t.Run(category, func(t *testing.T) {
			errs := Validate(completeProfile(category), category, ModeCreate)
			assert.Empty(t, errs)
		})
	}
}

func TestValidateServicesRequirement(t *testing.T) {
	t.Run("Education Never Requires Services", func(t *testing.T) {
		p := completeProfile(CategoryEducation)
		p.Services = nil

		errs := Validate(p, CategoryEducation, ModeCreate)

		assert.Empty(t, errs)
	})

	t.Run("Other Categories Require Services", func(t *testing.T) {
		for _, category := range Categories {
			if category == CategoryEducation {
				continue
			}
			p := completeProfile(category)
			p.Services = nil

			errs := Validate(p, category, ModeCreate)

			assert.Contains(t, errs, "services", "category %s", category)
		}
	})

	t.Run("Selected Service Must Be In Catalogue", func(t *testing.T) {
		p := completeProfile(CategoryPetCare)
		p.Services = []string{"Walking", "Skydiving"}

		errs := Validate(p, CategoryPetCare, ModeCreate)

		assert.Contains(t, errs, "services")
	})
}

func TestValidatePayRate(t *testing.T) {
	t.Run("Min Greater Than Max Rejected", func(t *testing.T) {
		p := completeProfile(CategoryHouseCleaning)
		p.PayRate = []float64{2000, 500}

		errs := Validate(p, CategoryHouseCleaning, ModeCreate)

		assert.Contains(t, errs, "payRate")
		assert.Len(t, errs, 1, "no other field should fail")
	})

	t.Run("Non Positive Rates Rejected", func(t *testing.T) {
		p := completeProfile(CategoryHouseCleaning)
		p.PayRate = []float64{0, 1000}

		errs := Validate(p, CategoryHouseCleaning, ModeUpdate)

		assert.Contains(t, errs, "payRate")
	})

	t.Run("Missing Range Rejected", func(t *testing.T) {
		p := completeProfile(CategoryHouseCleaning)
		p.PayRate = nil

		errs := Validate(p, CategoryHouseCleaning, ModeCreate)

		assert.Contains(t, errs, "payRate")
	})
}

func TestValidateCrossCategoryLeakage(t *testing.T) {
	p := completeProfile(CategoryPetCare)
	p.PetTypes = nil

	errs := Validate(p, CategoryPetCare, ModeCreate)

	assert.Contains(t, errs, "petTypes")
	assert.NotContains(t, errs, "ageGroups")
	assert.NotContains(t, errs, "syllabi")
	assert.NotContains(t, errs, "subjects")
	assert.NotContains(t, errs, "grades")
}

func TestValidateVerificationFieldsByMode(t *testing.T) {
	strip := func(p models.ProviderProfile) models.ProviderProfile {
		p.NIC = ""
		p.PoliceClearanceRef = ""
		p.BirthCertificateRef = ""
		p.Gender = ""
		p.Availability = ""
		return p
	}

	t.Run("Create Requires All Verification Fields", func(t *testing.T) {
		errs := Validate(strip(completeProfile(CategoryElderCare)), CategoryElderCare, ModeCreate)

		assert.Contains(t, errs, "nic")
		assert.Contains(t, errs, "policeClearanceRef")
		assert.Contains(t, errs, "birthCertificateRef")
		assert.Contains(t, errs, "gender")
		assert.Contains(t, errs, "availability")
	})

	t.Run("Update Skips Absent Verification Fields", func(t *testing.T) {
		errs := Validate(strip(completeProfile(CategoryElderCare)), CategoryElderCare, ModeUpdate)

		assert.Empty(t, errs)
	})

	t.Run("Update Still Validates Supplied Values", func(t *testing.T) {
		p := completeProfile(CategoryElderCare)
		p.Gender = "unknown"
		p.Availability = "maybe"

		errs := Validate(p, CategoryElderCare, ModeUpdate)

		assert.Contains(t, errs, "gender")
		assert.Contains(t, errs, "availability")
	})
}

func TestValidateUnknownCategory(t *testing.T) {
	p := completeProfile(CategoryHouseCleaning)

	errs := Validate(p, "Gardening", ModeCreate)

	assert.Contains(t, errs, "category")
}

func TestValidateLanguageMembership(t *testing.T) {
	p := completeProfile(CategoryHouseCleaning)
	p.Languages = []string{"Sinhala", "Klingon"}

	errs := Validate(p, CategoryHouseCleaning, ModeCreate)

	assert.Contains(t, errs, "languages")
}
