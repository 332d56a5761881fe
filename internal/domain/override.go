package domain

import "time"

// HiddenOption suppresses one catalog option for one apartment without
// touching the global catalog. Inserting the same pair twice is a no-op.
type HiddenOption struct {
	ID          int64     `json:"id"`
	ApartmentID int64     `json:"apartment_id"`
	OptionID    int64     `json:"option_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// CustomOption is an apartment-local addition to a category's catalog. Its
// ids live in a separate space from catalog Option ids.
type CustomOption struct {
	ID          int64     `json:"id"`
	ApartmentID int64     `json:"apartment_id" validate:"required"`
	CategoryID  int64     `json:"category_id" validate:"required"`
	Name        string    `json:"name" validate:"required"`
	Description string    `json:"description,omitempty"`
	InfoText    string    `json:"info_text,omitempty"`
	Price       float64   `json:"price"`
	ImageURL    string    `json:"image_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
