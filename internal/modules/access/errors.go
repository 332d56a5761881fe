package access

import "errors"

var (
	// ErrNotFound means the code matches no apartment. Distinct from storage
	// failures so handlers can answer "invalid code" instead of "try again".
	ErrNotFound = errors.New("unknown access code")

	// ErrGenerationExhausted means every generation attempt collided with an
	// existing code within the configured attempt budget.
	ErrGenerationExhausted = errors.New("access code generation exhausted")
)
