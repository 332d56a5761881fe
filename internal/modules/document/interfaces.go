package document

import (
	"context"

	"finishout/internal/domain"
)

type ApartmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Apartment, error)
}

type ProjectRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Project, error)
}

type CategoryRepository interface {
	ListByProject(ctx context.Context, projectID int64) ([]domain.Category, error)
}

type OptionRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Option, error)
	ListImages(ctx context.Context, optionIDs []int64) (map[int64][]domain.OptionImage, error)
}

type CustomOptionRepository interface {
	GetCustomByID(ctx context.Context, id int64) (*domain.CustomOption, error)
}

type SelectionRepository interface {
	ListByApartment(ctx context.Context, apartmentID int64) ([]domain.Selection, error)
}
