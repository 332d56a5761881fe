package selection

import (
	"context"
	"errors"
	"sort"
	"time"

	"finishout/internal/domain"
	"finishout/internal/modules/catalog"
	"finishout/internal/repository"

	"gorm.io/gorm"
)

// Service records one choice per (apartment, category), validates every
// write against the resolved catalog and owns the one-way completion lock.
type Service struct {
	apartments ApartmentRepository
	selections SelectionRepository
	resolver   Resolver
}

func NewService(apartments ApartmentRepository, selections SelectionRepository, resolver Resolver) *Service {
	return &Service{
		apartments: apartments,
		selections: selections,
		resolver:   resolver,
	}
}

// GetAll returns the recorded choice per category id. Categories without a
// recorded choice are absent from the map.
func (s *Service) GetAll(ctx context.Context, apartmentID int64) (map[int64]domain.OptionRef, error) {
	sels, err := s.selections.ListByApartment(ctx, apartmentID)
	if err != nil {
		return nil, err
	}
	out := make(map[int64]domain.OptionRef, len(sels))
	for _, sel := range sels {
		out[sel.CategoryID] = sel.Ref
	}
	return out, nil
}

// SetDraft saves one choice without committing. It replaces any prior
// choice for the category and moves an open apartment to in_progress. It
// never locks; customers can save progress and resume later.
func (s *Service) SetDraft(ctx context.Context, apartmentID, categoryID int64, ref domain.OptionRef) error {
	apt, err := s.apartments.GetByID(ctx, apartmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if apt.IsCompleted() {
		return ErrLocked
	}
	if !ref.Valid() {
		return ErrValidation
	}

	opts, err := s.resolver.ResolveCategory(ctx, apartmentID, categoryID)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	if !catalog.Contains(opts, ref) {
		return ErrInvalidSelection
	}

	sel := &domain.Selection{
		ApartmentID: apartmentID,
		CategoryID:  categoryID,
		Ref:         ref,
	}
	if err := s.selections.Upsert(ctx, sel); err != nil {
		return err
	}

	if apt.Status == domain.ApartmentOpen {
		// Best-effort CAS; losing the race to another draft save is fine.
		if _, err := s.apartments.AdvanceStatus(ctx, apartmentID, domain.ApartmentOpen, domain.ApartmentInProgress); err != nil {
			return err
		}
	}
	return nil
}

// CommitAll validates the complete answer set, snapshots each choice's
// then-current price and locks the apartment, all or nothing. A second
// commit against a completed apartment fails with ErrLocked and leaves the
// first commit's selections untouched.
func (s *Service) CommitAll(ctx context.Context, apartmentID int64, choices map[int64]domain.OptionRef, customerName string) error {
	apt, err := s.apartments.GetByID(ctx, apartmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if apt.IsCompleted() {
		return ErrLocked
	}

	// Deterministic validation order keeps error reporting stable.
	categoryIDs := make([]int64, 0, len(choices))
	for id := range choices {
		categoryIDs = append(categoryIDs, id)
	}
	sort.Slice(categoryIDs, func(i, j int) bool { return categoryIDs[i] < categoryIDs[j] })

	sels := make([]domain.Selection, 0, len(choices))
	for _, categoryID := range categoryIDs {
		ref := choices[categoryID]
		if !ref.Valid() {
			return ErrValidation
		}
		opts, err := s.resolver.ResolveCategory(ctx, apartmentID, categoryID)
		if err != nil {
			if errors.Is(err, catalog.ErrNotFound) {
				return ErrNotFound
			}
			return err
		}
		resolved := catalog.Find(opts, ref)
		if resolved == nil {
			return ErrInvalidSelection
		}
		price := resolved.Price
		sels = append(sels, domain.Selection{
			ApartmentID: apartmentID,
			CategoryID:  categoryID,
			Ref:         ref,
			Price:       &price,
		})
	}

	if err := s.selections.CommitAll(ctx, apartmentID, sels, customerName, time.Now()); err != nil {
		if errors.Is(err, repository.ErrAlreadyCompleted) {
			return ErrLocked
		}
		return err
	}
	return nil
}
