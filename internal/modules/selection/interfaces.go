package selection

import (
	"context"
	"time"

	"finishout/internal/domain"
	"finishout/internal/modules/catalog"
)

// ApartmentRepository defines the apartment state reads and transitions the
// store needs.
type ApartmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Apartment, error)
	AdvanceStatus(ctx context.Context, id int64, from, to domain.ApartmentStatus) (bool, error)
}

// SelectionRepository defines the selection persistence operations.
// CommitAll must be atomic: status flip, customer name and bulk write in one
// transaction, so a lost commit race leaves no trace at all.
type SelectionRepository interface {
	ListByApartment(ctx context.Context, apartmentID int64) ([]domain.Selection, error)
	Upsert(ctx context.Context, s *domain.Selection) error
	CommitAll(ctx context.Context, apartmentID int64, sels []domain.Selection, customerName string, completedAt time.Time) error
}

// Resolver yields the effective catalog a proposed choice is validated
// against.
type Resolver interface {
	ResolveCategory(ctx context.Context, apartmentID, categoryID int64) ([]catalog.ResolvedOption, error)
}
