package pricing

import (
	"context"

	"finishout/internal/domain"
)

// OptionRepository resolves catalog option references to their price.
type OptionRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Option, error)
}

// CustomOptionRepository resolves custom option references to their price.
type CustomOptionRepository interface {
	GetCustomByID(ctx context.Context, id int64) (*domain.CustomOption, error)
}
