package pricing

import (
	"context"
	"errors"
	"log"
	"math"

	"finishout/internal/domain"

	"gorm.io/gorm"
)

// Service aggregates selection prices. Committed selections carry a price
// snapshot taken at commit time and are never re-priced from the live
// catalog; draft selections are priced from the referenced entity.
type Service struct {
	options OptionRepository
	customs CustomOptionRepository
}

func NewService(options OptionRepository, customs CustomOptionRepository) *Service {
	return &Service{options: options, customs: customs}
}

// ResolvePrice returns the price one selection contributes. A dangling
// reference (e.g. a custom option deleted after being chosen) contributes
// zero and is logged as a data-integrity warning, not raised.
func (s *Service) ResolvePrice(ctx context.Context, sel domain.Selection) (float64, error) {
	if sel.Price != nil {
		return *sel.Price, nil
	}

	var (
		price float64
		err   error
	)
	switch sel.Ref.Kind {
	case domain.RefCatalog:
		var o *domain.Option
		o, err = s.options.GetByID(ctx, sel.Ref.ID)
		if err == nil {
			price = o.Price
		}
	case domain.RefCustom:
		var c *domain.CustomOption
		c, err = s.customs.GetCustomByID(ctx, sel.Ref.ID)
		if err == nil {
			price = c.Price
		}
	default:
		log.Printf("pricing: selection %d has no option reference, counting as zero", sel.ID)
		return 0, nil
	}

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("pricing: dangling reference %s on apartment %d category %d, counting as zero",
				sel.Ref, sel.ApartmentID, sel.CategoryID)
			return 0, nil
		}
		return 0, err
	}
	return price, nil
}

// Total sums the resolved price of every selection, rounded to cents.
func (s *Service) Total(ctx context.Context, sels []domain.Selection) (float64, error) {
	var total float64
	for _, sel := range sels {
		p, err := s.ResolvePrice(ctx, sel)
		if err != nil {
			return 0, err
		}
		total += p
	}
	return math.Round(total*100) / 100, nil
}
