package contracts

import (
	"context"
	"helpora-service/internal/pkg/dto/responses"
)

type CatalogueUsecase interface {
	GetDistricts(ctx context.Context) []string
	GetLanguages(ctx context.Context) []string
	GetCategories(ctx context.Context) []string
	GetCategoryCatalogue(ctx context.Context, category string) (*responses.CategoryCatalogue, error)
}
