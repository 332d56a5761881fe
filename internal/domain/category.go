package domain

import "time"

// Category groups mutually exclusive finish-out options within a project,
// e.g. flooring or bathroom fixtures. SortRank drives display order and is
// not required to be unique.
type Category struct {
	ID          int64     `json:"id"`
	ProjectID   int64     `json:"project_id" validate:"required"`
	Name        string    `json:"name" validate:"required"`
	Description string    `json:"description,omitempty"`
	SortRank    int       `json:"sort_rank"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Options []Option `json:"options,omitempty"`
}
