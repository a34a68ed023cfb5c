package catalogues

import (
	"context"
	"helpora-service/internal/app/contracts"
	"helpora-service/internal/pkg/dto/responses"
	"helpora-service/internal/pkg/exceptions"
	"helpora-service/internal/pkg/profile"
)

type catalogueUsecase struct{}

// NewCatalogueUsecase serves the static reference data the mobile forms
// are built from. Everything comes from the profile package; there is no
// storage behind it.
func NewCatalogueUsecase() contracts.CatalogueUsecase {
	return &catalogueUsecase{}
}

func (uc *catalogueUsecase) GetDistricts(ctx context.Context) []string {
	return append([]string(nil), profile.Districts...)
}

func (uc *catalogueUsecase) GetLanguages(ctx context.Context) []string {
	return append([]string(nil), profile.Languages...)
}

func (uc *catalogueUsecase) GetCategories(ctx context.Context) []string {
	return append([]string(nil), profile.Categories...)
}

func (uc *catalogueUsecase) GetCategoryCatalogue(ctx context.Context, category string) (*responses.CategoryCatalogue, error) {
	policy := profile.PolicyFor(category)
	if !policy.Known {
		return nil, exceptions.ErrCatalogueCategoryUnknown()
	}

	return &responses.CategoryCatalogue{
		Category:  category,
		Services:  append([]string(nil), policy.ServicesCatalogue...),
		PetTypes:  append([]string(nil), policy.PetTypesCatalogue...),
		AgeGroups: append([]string(nil), policy.AgeGroupsCatalogue...),
		Syllabi:   append([]string(nil), policy.SyllabusCatalogue...),
		Subjects:  append([]string(nil), policy.SubjectCatalogue...),
		Grades:    append([]string(nil), policy.GradeCatalogue...),
	}, nil
}
