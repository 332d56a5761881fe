package domain

import "time"

type ApartmentStatus string

const (
	ApartmentOpen       ApartmentStatus = "open"
	ApartmentInProgress ApartmentStatus = "in_progress"
	ApartmentCompleted  ApartmentStatus = "completed"
)

// CanTransitionTo enforces the apartment lifecycle:
// open -> in_progress -> completed, completed is terminal.
func (s ApartmentStatus) CanTransitionTo(next ApartmentStatus) bool {
	switch s {
	case ApartmentOpen:
		return next == ApartmentInProgress || next == ApartmentCompleted
	case ApartmentInProgress:
		return next == ApartmentCompleted
	default:
		return false
	}
}

type Apartment struct {
	ID           int64           `json:"id"`
	ProjectID    int64           `json:"project_id" validate:"required"`
	Name         string          `json:"name" validate:"required"`
	AccessCode   string          `json:"access_code"`
	Status       ApartmentStatus `json:"status"`
	CustomerName string          `json:"customer_name,omitempty"`
	CompletedAt  *time.Time      `json:"completed_at,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

func (a *Apartment) IsCompleted() bool {
	return a.Status == ApartmentCompleted
}
