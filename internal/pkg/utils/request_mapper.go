package utils

import (
	"helpora-service/internal/app/models"
	"helpora-service/internal/pkg/dto/requests"
)

func BuildProviderProfileFromRequest(request *requests.SaveProviderProfile) models.ProviderProfile {
	return models.ProviderProfile{
		ID:                  request.ID,
		Name:                request.Name,
		Category:            request.Category,
		District:            request.District,
		PayRate:             request.PayRate,
		Languages:           request.Languages,
		Biography:           request.Biography,
		PhotoRef:            request.PhotoRef,
		NIC:                 request.NIC,
		PoliceClearanceRef:  request.PoliceClearanceRef,
		BirthCertificateRef: request.BirthCertificateRef,
		Gender:              request.Gender,
		Availability:        request.Availability,
		Services:            request.Services,
		PetTypes:            request.PetTypes,
		AgeGroups:           request.AgeGroups,
		Syllabi:             request.Syllabi,
		Subjects:            request.Subjects,
		Grades:              request.Grades,
	}
}
