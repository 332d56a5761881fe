package selection

import "finishout/internal/domain"

// SubmitRequest carries the customer's choices keyed by category id
// (stringified in JSON). Final distinguishes a locking submission from a
// draft save.
type SubmitRequest struct {
	Selections   map[string]domain.OptionRef `json:"selections" binding:"required"`
	Final        bool                        `json:"final"`
	CustomerName string                      `json:"customer_name"`
}
