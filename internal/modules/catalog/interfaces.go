package catalog

import (
	"context"

	"finishout/internal/domain"
)

// ApartmentRepository supplies the project scope a category lookup is
// checked against.
type ApartmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Apartment, error)
}

type CategoryRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Category, error)
	ListByProject(ctx context.Context, projectID int64) ([]domain.Category, error)
}

type OptionRepository interface {
	ListByCategory(ctx context.Context, categoryID int64) ([]domain.Option, error)
	ListImages(ctx context.Context, optionIDs []int64) (map[int64][]domain.OptionImage, error)
}

type OverrideRepository interface {
	HiddenOptionIDs(ctx context.Context, apartmentID int64) ([]int64, error)
	ListCustomByCategory(ctx context.Context, apartmentID, categoryID int64) ([]domain.CustomOption, error)
}
