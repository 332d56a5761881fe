package document

import (
	"context"
	"errors"
	"log"

	"finishout/internal/domain"
	"finishout/internal/modules/pricing"

	"gorm.io/gorm"
)

// Composer assembles the protocol document from an apartment's recorded
// state. It only orders and attaches data; it never fetches images or
// renders a concrete format itself.
type Composer struct {
	apartments ApartmentRepository
	projects   ProjectRepository
	categories CategoryRepository
	options    OptionRepository
	customs    CustomOptionRepository
	selections SelectionRepository
	pricing    *pricing.Service
}

func NewComposer(
	apartments ApartmentRepository,
	projects ProjectRepository,
	categories CategoryRepository,
	options OptionRepository,
	customs CustomOptionRepository,
	selections SelectionRepository,
	pricingSvc *pricing.Service,
) *Composer {
	return &Composer{
		apartments: apartments,
		projects:   projects,
		categories: categories,
		options:    options,
		customs:    customs,
		selections: selections,
		pricing:    pricingSvc,
	}
}

// Compose builds the summary for one apartment. Row order follows category
// display order; categories without a recorded selection yield no row. A
// selection whose referenced option no longer exists yields no row and is
// excluded from the total, so the printed rows always add up to the printed
// total.
func (c *Composer) Compose(ctx context.Context, apartmentID int64) (*Summary, error) {
	apt, err := c.apartments.GetByID(ctx, apartmentID)
	if err != nil {
		return nil, err
	}
	project, err := c.projects.GetByID(ctx, apt.ProjectID)
	if err != nil {
		return nil, err
	}
	cats, err := c.categories.ListByProject(ctx, apt.ProjectID)
	if err != nil {
		return nil, err
	}
	sels, err := c.selections.ListByApartment(ctx, apartmentID)
	if err != nil {
		return nil, err
	}
	byCategory := make(map[int64]domain.Selection, len(sels))
	for _, sel := range sels {
		byCategory[sel.CategoryID] = sel
	}

	rows := make([]Row, 0, len(sels))
	priced := make([]domain.Selection, 0, len(sels))
	for _, cat := range cats {
		sel, ok := byCategory[cat.ID]
		if !ok {
			continue
		}
		row, ok, err := c.composeRow(ctx, cat, sel)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		rows = append(rows, row)
		priced = append(priced, sel)
	}

	total, err := c.pricing.Total(ctx, priced)
	if err != nil {
		return nil, err
	}

	return &Summary{
		ProjectName:    project.Name,
		ProjectAddress: project.Address,
		ApartmentName:  apt.Name,
		CustomerName:   apt.CustomerName,
		AccessCode:     apt.AccessCode,
		Status:         string(apt.Status),
		CompletedAt:    apt.CompletedAt,
		Rows:           rows,
		Total:          total,
		TotalLabel:     pricing.FormatTotal(total),
	}, nil
}

func (c *Composer) composeRow(ctx context.Context, cat domain.Category, sel domain.Selection) (Row, bool, error) {
	price, err := c.pricing.ResolvePrice(ctx, sel)
	if err != nil {
		return Row{}, false, err
	}

	row := Row{
		CategoryName: cat.Name,
		Price:        price,
		PriceLabel:   pricing.FormatPrice(price),
	}

	switch sel.Ref.Kind {
	case domain.RefCatalog:
		opt, err := c.options.GetByID(ctx, sel.Ref.ID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				log.Printf("document: dangling reference %s in category %d, row omitted", sel.Ref, cat.ID)
				return Row{}, false, nil
			}
			return Row{}, false, err
		}
		images, err := c.options.ListImages(ctx, []int64{opt.ID})
		if err != nil {
			return Row{}, false, err
		}
		for _, img := range images[opt.ID] {
			row.ImageURLs = append(row.ImageURLs, img.URL)
		}
		row.OptionName = opt.Name
		row.Description = opt.Description
		row.InfoText = opt.InfoText
	case domain.RefCustom:
		custom, err := c.customs.GetCustomByID(ctx, sel.Ref.ID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				log.Printf("document: dangling reference %s in category %d, row omitted", sel.Ref, cat.ID)
				return Row{}, false, nil
			}
			return Row{}, false, err
		}
		row.OptionName = custom.Name
		row.Description = custom.Description
		row.InfoText = custom.InfoText
		row.Custom = true
		if custom.ImageURL != "" {
			row.ImageURLs = []string{custom.ImageURL}
		}
	default:
		return Row{}, false, nil
	}

	return row, true, nil
}
