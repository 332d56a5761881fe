package access

import (
	"context"

	"finishout/internal/domain"
)

// ApartmentRepository defines the apartment lookups the gate needs.
type ApartmentRepository interface {
	GetByCode(ctx context.Context, code string) (*domain.Apartment, error)
	CodeExists(ctx context.Context, code string) (bool, error)
}

// ProjectRepository provides the project metadata echoed by the lookup
// endpoint.
type ProjectRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Project, error)
}
