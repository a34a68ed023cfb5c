package utils

import (
	"helpora-service/internal/pkg/dto/requests"
	"strings"
)

// SanitizeSaveProfileRequest trims the free-text inputs and lowercases the
// enum-like ones before struct validation. The normalizer repeats the
// trimming for profiles loaded from the store; doing it here keeps the
// validator tag errors readable ("gender must be one of ...").
func SanitizeSaveProfileRequest(request *requests.SaveProviderProfile) {
	request.ID = strings.TrimSpace(request.ID)
	request.Name = strings.TrimSpace(request.Name)
	request.Category = strings.TrimSpace(request.Category)
	request.District = strings.TrimSpace(request.District)
	request.Biography = strings.TrimSpace(request.Biography)
	request.PhotoRef = strings.TrimSpace(request.PhotoRef)
	request.NIC = strings.TrimSpace(request.NIC)
	request.PoliceClearanceRef = strings.TrimSpace(request.PoliceClearanceRef)
	request.BirthCertificateRef = strings.TrimSpace(request.BirthCertificateRef)
	request.Gender = strings.ToLower(strings.TrimSpace(request.Gender))
	request.Availability = strings.ToLower(strings.TrimSpace(request.Availability))

	request.Languages = sanitizeList(request.Languages)
	request.Services = sanitizeList(request.Services)
	request.PetTypes = sanitizeList(request.PetTypes)
	request.AgeGroups = sanitizeList(request.AgeGroups)
	request.Syllabi = sanitizeList(request.Syllabi)
	request.Subjects = sanitizeList(request.Subjects)
	request.Grades = sanitizeList(request.Grades)
}

func sanitizeList(values []string) []string {
	if values == nil {
		return nil
	}
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
