package domain

import "time"

type ProjectStatus string

const (
	ProjectDraft    ProjectStatus = "draft"
	ProjectActive   ProjectStatus = "active"
	ProjectArchived ProjectStatus = "archived"
)

type Project struct {
	ID        int64         `json:"id"`
	Name      string        `json:"name" validate:"required"`
	Address   string        `json:"address"`
	IntroText string        `json:"intro_text,omitempty"`
	Status    ProjectStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`

	Categories []Category `json:"categories,omitempty"`
}
