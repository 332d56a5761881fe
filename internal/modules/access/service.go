package access

import (
	"context"
	"errors"
	"strings"

	"finishout/internal/domain"

	"gorm.io/gorm"
)

// Service is the access gate: it maps an opaque access code to an apartment
// and mints new unique codes for the administrative side.
type Service struct {
	apartments  ApartmentRepository
	codeLength  int
	maxAttempts int
}

func NewService(apartments ApartmentRepository, codeLength, maxAttempts int) *Service {
	return &Service{
		apartments:  apartments,
		codeLength:  codeLength,
		maxAttempts: maxAttempts,
	}
}

// Canonical returns the stored form of a code. Codes are matched
// case-insensitively but kept uppercase in the database.
func Canonical(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Resolve maps a code to its apartment. Pure lookup, no side effects.
func (s *Service) Resolve(ctx context.Context, code string) (*domain.Apartment, error) {
	code = Canonical(code)
	if code == "" {
		return nil, ErrNotFound
	}
	apt, err := s.apartments.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return apt, nil
}

// GenerateCode draws random codes until one is unused, giving up with
// ErrGenerationExhausted after the configured number of attempts.
func (s *Service) GenerateCode(ctx context.Context) (string, error) {
	for attempt := 0; attempt < s.maxAttempts; attempt++ {
		code, err := randomCode(s.codeLength)
		if err != nil {
			return "", err
		}
		exists, err := s.apartments.CodeExists(ctx, code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
	}
	return "", ErrGenerationExhausted
}
