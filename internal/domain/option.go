package domain

import "time"

// Option is a globally defined, project-scoped catalog choice within a
// category. Price is signed: zero means included at no extra cost, negative
// is a credit. At most one option per category carries IsDefault; the
// repository clears sibling defaults on write.
type Option struct {
	ID          int64     `json:"id"`
	CategoryID  int64     `json:"category_id" validate:"required"`
	Name        string    `json:"name" validate:"required"`
	Description string    `json:"description,omitempty"`
	InfoText    string    `json:"info_text,omitempty"`
	Price       float64   `json:"price"`
	IsDefault   bool      `json:"is_default"`
	SortRank    int       `json:"sort_rank"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Images []OptionImage `json:"images,omitempty"`
}

// OptionImage is display metadata only; the configurator passes URLs
// through opaquely and never fetches them. SortRank 0 is the primary image.
type OptionImage struct {
	ID        int64     `json:"id"`
	OptionID  int64     `json:"option_id"`
	StoredKey string    `json:"-"`
	URL       string    `json:"url" validate:"required"`
	SortRank  int       `json:"sort_rank"`
	CreatedAt time.Time `json:"created_at"`
}
