package utils

import (
	"helpora-service/internal/app/models"
	"helpora-service/internal/pkg/dto/responses"
)

func BuildProviderProfileResponse(entity *models.ProviderProfile) *responses.ProviderProfile {
	return &responses.ProviderProfile{
		ID:                  entity.ID,
		Name:                entity.Name,
		Category:            entity.Category,
		District:            entity.District,
		PayRate:             entity.PayRate,
		Languages:           entity.Languages,
		Biography:           entity.Biography,
		PhotoRef:            entity.PhotoRef,
		NIC:                 entity.NIC,
		PoliceClearanceRef:  entity.PoliceClearanceRef,
		BirthCertificateRef: entity.BirthCertificateRef,
		Gender:              entity.Gender,
		Availability:        entity.Availability,
		Services:            entity.Services,
		PetTypes:            entity.PetTypes,
		AgeGroups:           entity.AgeGroups,
		Syllabi:             entity.Syllabi,
		Subjects:            entity.Subjects,
		Grades:              entity.Grades,
		CreatedAt:           entity.CreatedAt,
		UpdatedAt:           entity.UpdatedAt,
	}
}
