package catalog

import (
	"context"
	"errors"

	"finishout/internal/domain"

	"gorm.io/gorm"
)

// Service resolves the effective, apartment-specific catalog:
// global options minus the apartment's hidden marks, plus its custom
// options. The result order is stable across calls with unchanged data:
// catalog options by sort rank (id as tie break), then custom options in
// creation order.
type Service struct {
	apartments ApartmentRepository
	categories CategoryRepository
	options    OptionRepository
	overrides  OverrideRepository
}

func NewService(apartments ApartmentRepository, categories CategoryRepository, options OptionRepository, overrides OverrideRepository) *Service {
	return &Service{
		apartments: apartments,
		categories: categories,
		options:    options,
		overrides:  overrides,
	}
}

// ResolveCategory resolves one category for one apartment. A category from a
// different project does not exist from that apartment's point of view.
func (s *Service) ResolveCategory(ctx context.Context, apartmentID, categoryID int64) ([]ResolvedOption, error) {
	apt, err := s.apartments.GetByID(ctx, apartmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	cat, err := s.categories.GetByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if cat.ProjectID != apt.ProjectID {
		return nil, ErrNotFound
	}
	return s.resolveOptions(ctx, apartmentID, categoryID)
}

// ResolveAll resolves every category of the project in display order.
func (s *Service) ResolveAll(ctx context.Context, apartmentID, projectID int64) ([]ResolvedCategory, error) {
	cats, err := s.categories.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	out := make([]ResolvedCategory, 0, len(cats))
	for _, cat := range cats {
		opts, err := s.resolveOptions(ctx, apartmentID, cat.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, ResolvedCategory{Category: cat, Options: opts})
	}
	return out, nil
}

func (s *Service) resolveOptions(ctx context.Context, apartmentID, categoryID int64) ([]ResolvedOption, error) {
	globals, err := s.options.ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	hiddenIDs, err := s.overrides.HiddenOptionIDs(ctx, apartmentID)
	if err != nil {
		return nil, err
	}
	hidden := make(map[int64]bool, len(hiddenIDs))
	for _, id := range hiddenIDs {
		hidden[id] = true
	}

	visible := make([]domain.Option, 0, len(globals))
	visibleIDs := make([]int64, 0, len(globals))
	for _, o := range globals {
		if hidden[o.ID] {
			continue
		}
		visible = append(visible, o)
		visibleIDs = append(visibleIDs, o.ID)
	}

	images, err := s.options.ListImages(ctx, visibleIDs)
	if err != nil {
		return nil, err
	}

	customs, err := s.overrides.ListCustomByCategory(ctx, apartmentID, categoryID)
	if err != nil {
		return nil, err
	}

	out := make([]ResolvedOption, 0, len(visible)+len(customs))
	for _, o := range visible {
		urls := make([]string, 0, len(images[o.ID]))
		for _, img := range images[o.ID] {
			urls = append(urls, img.URL)
		}
		out = append(out, ResolvedOption{
			Ref:         domain.CatalogRef(o.ID),
			Name:        o.Name,
			Description: o.Description,
			InfoText:    o.InfoText,
			Price:       o.Price,
			IsDefault:   o.IsDefault,
			ImageURLs:   urls,
		})
	}
	for _, c := range customs {
		var urls []string
		if c.ImageURL != "" {
			urls = []string{c.ImageURL}
		}
		out = append(out, ResolvedOption{
			Ref:         domain.CustomRef(c.ID),
			Name:        c.Name,
			Description: c.Description,
			InfoText:    c.InfoText,
			Price:       c.Price,
			ImageURLs:   urls,
		})
	}
	return out, nil
}

// DefaultOption picks the pre-selected option for a category the customer
// has not answered yet: the marked default, else the first catalog option in
// display order. Custom options are never auto-selected; nil means the
// category has no pre-selectable option.
func DefaultOption(opts []ResolvedOption) *ResolvedOption {
	for i := range opts {
		if opts[i].IsDefault {
			return &opts[i]
		}
	}
	for i := range opts {
		if opts[i].Ref.Kind == domain.RefCatalog {
			return &opts[i]
		}
	}
	return nil
}

// Contains reports whether ref is a member of the resolved option list.
func Contains(opts []ResolvedOption, ref domain.OptionRef) bool {
	for _, o := range opts {
		if o.Ref == ref {
			return true
		}
	}
	return false
}

// Find returns the resolved option matching ref, or nil.
func Find(opts []ResolvedOption, ref domain.OptionRef) *ResolvedOption {
	for i := range opts {
		if opts[i].Ref == ref {
			return &opts[i]
		}
	}
	return nil
}
