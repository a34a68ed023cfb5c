package profile

import (
	"strings"

	"helpora-service/internal/app/models"
)

const (
	DefaultPayRateMin = 500
	DefaultPayRateMax = 2000

	// PlaceholderPhotoRef is served by the frontend asset bundle.
	PlaceholderPhotoRef = "/assets/profile-placeholder.png"
)

// Normalize merges a possibly partial or legacy-shaped profile with
// defaults, producing a record safe to validate and render without nil
// checks. It never mutates its input and is idempotent.
func Normalize(p models.ProviderProfile, category string) models.ProviderProfile {
	out := p

	out.Category = strings.TrimSpace(category)
	out.Name = strings.TrimSpace(p.Name)
	out.District = strings.TrimSpace(p.District)
	out.Biography = strings.TrimSpace(p.Biography)
	out.NIC = strings.TrimSpace(p.NIC)
	out.PoliceClearanceRef = strings.TrimSpace(p.PoliceClearanceRef)
	out.BirthCertificateRef = strings.TrimSpace(p.BirthCertificateRef)
	out.Gender = strings.TrimSpace(strings.ToLower(p.Gender))

	if len(p.PayRate) != 2 {
		out.PayRate = []float64{DefaultPayRateMin, DefaultPayRateMax}
	} else {
		out.PayRate = []float64{p.PayRate[0], p.PayRate[1]}
	}

	if strings.TrimSpace(p.PhotoRef) == "" {
		out.PhotoRef = PlaceholderPhotoRef
	} else {
		out.PhotoRef = strings.TrimSpace(p.PhotoRef)
	}

	if strings.TrimSpace(p.Availability) == "" {
		out.Availability = "no"
	} else {
		out.Availability = strings.TrimSpace(strings.ToLower(p.Availability))
	}

	out.Languages = copySet(p.Languages)
	out.Services = copySet(p.Services)
	out.PetTypes = copySet(p.PetTypes)
	out.AgeGroups = copySet(p.AgeGroups)
	out.Syllabi = copySet(p.Syllabi)
	out.Subjects = copySet(p.Subjects)
	out.Grades = copySet(p.Grades)

	return out
}

// MergeStored carries forward the stored values for the fields an update
// request is allowed to omit: the verification documents, gender,
// availability and the photo reference. The edit form only posts what the
// provider touched, so an empty incoming value here means "unchanged", not
// "clear". Non-mutating, like Normalize.
func MergeStored(p, stored models.ProviderProfile) models.ProviderProfile {
	out := p

	if strings.TrimSpace(p.NIC) == "" {
		out.NIC = stored.NIC
	}
	if strings.TrimSpace(p.PoliceClearanceRef) == "" {
		out.PoliceClearanceRef = stored.PoliceClearanceRef
	}
	if strings.TrimSpace(p.BirthCertificateRef) == "" {
		out.BirthCertificateRef = stored.BirthCertificateRef
	}
	if strings.TrimSpace(p.Gender) == "" {
		out.Gender = stored.Gender
	}
	if strings.TrimSpace(p.Availability) == "" {
		out.Availability = stored.Availability
	}
	if strings.TrimSpace(p.PhotoRef) == "" {
		out.PhotoRef = stored.PhotoRef
	}

	return out
}

// copySet trims entries, drops empties and returns a fresh non-nil slice so
// callers can range and append without nil branching.
func copySet(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
