package profile

import (
	"fmt"
	"strings"

	"helpora-service/internal/app/models"
)

// Mode controls how strictly the verification fields are checked. Creation
// requires all of them; updates only validate the ones being changed. The
// asymmetry is deliberate and mirrors the registration flow: verification
// documents are collected once at account creation.
type Mode string

const (
	ModeCreate Mode = "create"
	ModeUpdate Mode = "update"
)

// Validate maps a candidate profile to field-keyed, human-readable error
// messages. An empty map means the profile is submittable. Pure function:
// no I/O, never panics.
func Validate(p models.ProviderProfile, category string, mode Mode) map[string]string {
	errs := make(map[string]string)

	policy := PolicyFor(category)
	if !policy.Known {
		errs["category"] = "must be a known service category"
	}

	if strings.TrimSpace(p.Name) == "" {
		errs["name"] = "name is required"
	}
	if strings.TrimSpace(p.District) == "" {
		errs["district"] = "district is required"
	} else if !contains(Districts, p.District) {
		errs["district"] = "district is not recognized"
	}

	switch {
	case len(p.PayRate) != 2:
		errs["payRate"] = "hourly rate range is required"
	case p.PayRate[0] <= 0 || p.PayRate[1] <= 0:
		errs["payRate"] = "hourly rates must be greater than zero"
	case p.PayRate[0] > p.PayRate[1]:
		errs["payRate"] = "minimum rate cannot exceed maximum rate"
	}

	if len(p.Languages) == 0 {
		errs["languages"] = "select at least one language"
	} else if invalid := firstNotIn(p.Languages, Languages); invalid != "" {
		errs["languages"] = fmt.Sprintf("'%s' is not a supported language", invalid)
	}

	if strings.TrimSpace(p.Biography) == "" {
		errs["biography"] = "biography is required"
	}

	if policy.Known {
		validateConditional(p, policy, errs)
	}
	validateVerification(p, mode, errs)

	return errs
}

// validateConditional checks only the groups the category's policy flags,
// so no category ever reports errors for another category's fields.
func validateConditional(p models.ProviderProfile, policy Policy, errs map[string]string) {
	if policy.ServicesCatalogue != nil {
		if len(p.Services) == 0 {
			errs["services"] = "select at least one service"
		} else if invalid := firstNotIn(p.Services, policy.ServicesCatalogue); invalid != "" {
			errs["services"] = fmt.Sprintf("'%s' is not offered in this category", invalid)
		}
	}

	if policy.RequiresPetTypes {
		if len(p.PetTypes) == 0 {
			errs["petTypes"] = "select at least one pet type"
		} else if invalid := firstNotIn(p.PetTypes, policy.PetTypesCatalogue); invalid != "" {
			errs["petTypes"] = fmt.Sprintf("'%s' is not a supported pet type", invalid)
		}
	}

	if policy.RequiresAgeGroups {
		if len(p.AgeGroups) == 0 {
			errs["ageGroups"] = "select at least one age group"
		} else if invalid := firstNotIn(p.AgeGroups, policy.AgeGroupsCatalogue); invalid != "" {
			errs["ageGroups"] = fmt.Sprintf("'%s' is not a supported age group", invalid)
		}
	}

	if policy.RequiresEducationFields {
		if len(p.Syllabi) == 0 {
			errs["syllabi"] = "select at least one syllabus"
		} else if invalid := firstNotIn(p.Syllabi, policy.SyllabusCatalogue); invalid != "" {
			errs["syllabi"] = fmt.Sprintf("'%s' is not a supported syllabus", invalid)
		}
		if len(p.Subjects) == 0 {
			errs["subjects"] = "select at least one subject"
		} else if invalid := firstNotIn(p.Subjects, policy.SubjectCatalogue); invalid != "" {
			errs["subjects"] = fmt.Sprintf("'%s' is not a supported subject", invalid)
		}
		if len(p.Grades) == 0 {
			errs["grades"] = "select at least one grade"
		} else if invalid := firstNotIn(p.Grades, policy.GradeCatalogue); invalid != "" {
			errs["grades"] = fmt.Sprintf("'%s' is not a supported grade", invalid)
		}
	}
}

func validateVerification(p models.ProviderProfile, mode Mode, errs map[string]string) {
	required := mode == ModeCreate

	if strings.TrimSpace(p.NIC) == "" {
		if required {
			errs["nic"] = "NIC number is required"
		}
	}
	if strings.TrimSpace(p.PoliceClearanceRef) == "" {
		if required {
			errs["policeClearanceRef"] = "police clearance document is required"
		}
	}
	if strings.TrimSpace(p.BirthCertificateRef) == "" {
		if required {
			errs["birthCertificateRef"] = "birth certificate document is required"
		}
	}

	if strings.TrimSpace(p.Gender) == "" {
		if required {
			errs["gender"] = "gender is required"
		}
	} else if !contains(Genders, p.Gender) {
		errs["gender"] = "gender must be male, female or other"
	}

	if strings.TrimSpace(p.Availability) == "" {
		if required {
			errs["availability"] = "availability is required"
		}
	} else if p.Availability != "yes" && p.Availability != "no" {
		errs["availability"] = "availability must be 'yes' or 'no'"
	}
}

func firstNotIn(selected, catalogue []string) string {
	for _, value := range selected {
		if !contains(catalogue, value) {
			return value
		}
	}
	return ""
}
